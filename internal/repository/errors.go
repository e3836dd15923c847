package repository

import "errors"

// ErrNotFound - значение-признак отсутствия записи, не авария.
var ErrNotFound = errors.New("запись не найдена")
