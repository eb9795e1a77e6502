package models

// DefaultMaxBatchSize - порог размера payload в байтах для cellular gate (5 MiB)
const DefaultMaxBatchSize = 5 * 1024 * 1024

// SyncPreferences содержит пользовательские настройки синхронизации.
// Обновляются только целиком через shallow merge (см. PreferencesPatch),
// поэтому частично испорченное состояние невозможно.
type SyncPreferences struct {
	AutoSync             bool  `json:"auto_sync"`               // AutoSync автоматический запуск синхронизации при reconnect
	SyncOnCellular       bool  `json:"sync_on_cellular"`        // SyncOnCellular передавать крупные payload на metered соединении
	SyncPhotosOnCellular bool  `json:"sync_photos_on_cellular"` // SyncPhotosOnCellular передавать media payload на metered соединении
	NotifyOnSync         bool  `json:"notify_on_sync"`          // NotifyOnSync уведомлять о завершении синхронизации
	MaxBatchSize         int64 `json:"max_batch_size"`          // MaxBatchSize порог размера payload в байтах
}

// DefaultPreferences возвращает настройки по умолчанию.
func DefaultPreferences() SyncPreferences {
	return SyncPreferences{
		AutoSync:             true,
		SyncOnCellular:       true,
		SyncPhotosOnCellular: false,
		MaxBatchSize:         DefaultMaxBatchSize,
		NotifyOnSync:         true,
	}
}

// PreferencesPatch описывает частичное обновление настроек.
// nil поле означает "не менять".
type PreferencesPatch struct {
	AutoSync             *bool  `json:"auto_sync,omitempty"`
	SyncOnCellular       *bool  `json:"sync_on_cellular,omitempty"`
	SyncPhotosOnCellular *bool  `json:"sync_photos_on_cellular,omitempty"`
	NotifyOnSync         *bool  `json:"notify_on_sync,omitempty"`
	MaxBatchSize         *int64 `json:"max_batch_size,omitempty"`
}

// Merge применяет patch поверх текущих настроек и возвращает результат.
// Исходное значение не изменяется.
func (p SyncPreferences) Merge(patch PreferencesPatch) SyncPreferences {
	merged := p
	if patch.AutoSync != nil {
		merged.AutoSync = *patch.AutoSync
	}
	if patch.SyncOnCellular != nil {
		merged.SyncOnCellular = *patch.SyncOnCellular
	}
	if patch.SyncPhotosOnCellular != nil {
		merged.SyncPhotosOnCellular = *patch.SyncPhotosOnCellular
	}
	if patch.NotifyOnSync != nil {
		merged.NotifyOnSync = *patch.NotifyOnSync
	}
	if patch.MaxBatchSize != nil {
		merged.MaxBatchSize = *patch.MaxBatchSize
	}
	return merged
}
