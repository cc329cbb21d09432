package models

import "github.com/pkg/errors"

// Modality - формат работы по вакансии
type Modality string

const (
	ModalityRemote Modality = "remote"
	ModalityHybrid Modality = "hybrid"
	ModalityOnSite Modality = "on_site"
)

var modalityHumanName = map[Modality]string{
	ModalityRemote: "Удаленно",
	ModalityHybrid: "Гибрид",
	ModalityOnSite: "Офис",
}

func (m Modality) ToHuman() string {
	if human, exist := modalityHumanName[m]; exist {
		return human
	}
	return string(m)
}

func (m Modality) Validate() error {
	if m == "" {
		return nil
	}
	if _, exist := modalityHumanName[m]; !exist {
		return errors.Errorf("неизвестный формат работы: %v", m)
	}
	return nil
}
