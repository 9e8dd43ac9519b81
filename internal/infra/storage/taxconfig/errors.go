package taxconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда налоговая конфигурация не найдена
	ErrConfigNotFound = errors.New("taxconfig.repository: tax config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("taxconfig.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("taxconfig.repository: failed to scan row")
)
