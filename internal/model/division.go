package model

// Division 实习生所属部门，取值固定为四个
type Division string

const (
	DivisionEngineering  Division = "Engineering"
	DivisionTechPrograms Division = "Tech Programs"
	DivisionRadioSupport Division = "Radio Support"
	DivisionHubSupport   Division = "Hub Support"
)

var divisions = [...]Division{
	DivisionEngineering,
	DivisionTechPrograms,
	DivisionRadioSupport,
	DivisionHubSupport,
}

// Divisions 返回固定部门列表的副本，顺序即报告顺序
func Divisions() []Division {
	out := make([]Division, len(divisions))
	copy(out, divisions[:])
	return out
}

// ParseDivision 区分大小写的精确匹配
func ParseDivision(s string) (Division, bool) {
	for _, d := range divisions {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

func (d Division) String() string {
	return string(d)
}
