package model

import "time"

// 作业状态枚举
// 初始为 pending，由管理员转移到 accepted / rejected
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Assignment 作业提交表 — 对应 assignments
// user_id 为提交人，admin_id 为受理管理员
type Assignment struct {
	AssignmentID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	UserID         string    `gorm:"type:uuid;not null"                             json:"user_id"`
	AdminID        string    `gorm:"type:uuid;not null;index"                       json:"admin_id"`
	Task           string    `gorm:"type:text;not null"                             json:"task"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	SubmissionDate time.Time `gorm:"autoCreateTime"                                 json:"submission_date"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"                                 json:"last_modified"`

	// 关联
	User  *User `gorm:"foreignKey:UserID;references:UserID"  json:"user,omitempty"`
	Admin *User `gorm:"foreignKey:AdminID;references:UserID" json:"admin,omitempty"`
}

// TableName 指定表名
func (Assignment) TableName() string { return "assignments" }
