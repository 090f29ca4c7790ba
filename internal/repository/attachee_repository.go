package repository

import (
	"strings"
	"sync"

	"techhub/internal/model"
	"techhub/internal/util"
)

// AttacheeRepository 按插入顺序保存实习生记录，仅存在于内存中
type AttacheeRepository struct {
	mu        sync.RWMutex
	attachees []*model.Attachee
}

func NewAttacheeRepository() *AttacheeRepository {
	return &AttacheeRepository{}
}

func (r *AttacheeRepository) Create(attachee *model.Attachee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attachees = append(r.attachees, attachee)
	return nil
}

// FindByName 不区分大小写，返回第一条匹配记录
func (r *AttacheeRepository) FindByName(name string) (*model.Attachee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.attachees {
		if strings.EqualFold(a.Name(), name) {
			return a, nil
		}
	}
	return nil, util.ErrAttacheeNotFound
}

// FindByDivision 保持插入顺序；没有成员时返回空切片
func (r *AttacheeRepository) FindByDivision(division model.Division) []*model.Attachee {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Attachee, 0)
	for _, a := range r.attachees {
		if a.Division() == division {
			out = append(out, a)
		}
	}
	return out
}

func (r *AttacheeRepository) FindAll() []*model.Attachee {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Attachee, len(r.attachees))
	copy(out, r.attachees)
	return out
}

func (r *AttacheeRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.attachees)
}
