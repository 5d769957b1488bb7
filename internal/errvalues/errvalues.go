package errvalues

import "errors"

var (
	ErrNoProfile       = errors.New("профиль не настроен")
	ErrNoSession       = errors.New("настройка профиля не запущена")
	ErrNothingToCancel = errors.New("нет активного действия")
	ErrNoPendingFood   = errors.New("нет продукта, ожидающего граммовки")
	ErrProductNotFound = errors.New("продукт не найден")
	ErrInvalidInput    = errors.New("некорректный ввод")
	ErrNotEnoughData   = errors.New("недостаточно данных для графиков")
)
