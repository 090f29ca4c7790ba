package util

// Render 统一输出结构：成功时返回消息本身，失败时返回 "Error: <err>"
func Render(message string, err error) string {
	if err != nil {
		return "Error: " + err.Error()
	}
	return message
}
