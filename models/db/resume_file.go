package dbmodels

// ResumeFile - метаданные резюме, приложенного к отклику; тело файла лежит в S3
type ResumeFile struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);uniqueIndex"`
	Application   *Application
	FileName      string `gorm:"type:varchar(255)"`
	ContentType   string `gorm:"type:varchar(100)"`
	Size          int64
}
