package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Сентинельные ошибки слоя репозиториев. Сервисы преобразуют их
// в apperrors с нужным HTTP-кодом.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// translateGormError приводит ошибки GORM к сентинелям пакета.
// Гонка двух одновременных Create обходит предварительный Count
// и упирается в уникальный индекс: это тоже ErrDuplicate, а не 500.
func translateGormError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
