package models

// MutationOperation определяет тип локальной операции записи
type MutationOperation string

// Supported mutation operations
const (
	OperationCreate MutationOperation = "create"
	OperationUpdate MutationOperation = "update"
	OperationDelete MutationOperation = "delete"
)

// MutationStatus определяет состояние записи в очереди синхронизации
type MutationStatus string

// Mutation lifecycle states: pending -> syncing -> (removed | failed)
const (
	StatusPending MutationStatus = "pending"
	StatusSyncing MutationStatus = "syncing"
	StatusFailed  MutationStatus = "failed"
)

// PendingMutation представляет одну локальную запись, ожидающую применения
// на сервере. Создается при любой локальной записи в offline режиме
// (или оптимистично в online режиме) и удаляется из очереди только после
// успешной передачи на сервер.
type PendingMutation struct {
	Payload    map[string]any    `json:"payload"`     // Payload непрозрачный снимок данных записи
	ID         string            `json:"id"`          // ID уникальный идентификатор мутации (UUID)
	EntityType string            `json:"entity_type"` // EntityType тип записи, например "punch_item"
	EntityID   string            `json:"entity_id"`   // EntityID идентификатор затронутой записи
	Operation  MutationOperation `json:"operation"`   // Operation тип операции: create/update/delete
	Status     MutationStatus    `json:"status"`      // Status текущее состояние в очереди
	CreatedAt  int64             `json:"created_at"`  // CreatedAt время создания, epoch millis
	Timestamp  int64             `json:"timestamp"`   // Timestamp время операции, epoch millis
	RetryCount int               `json:"retry_count"` // RetryCount количество неудачных попыток передачи
}

// IsPending reports whether the mutation is still waiting for its first
// or next transmission attempt.
func (m *PendingMutation) IsPending() bool {
	return m.Status == StatusPending
}

// Clone создает глубокую копию мутации.
// Payload копируется на один уровень: вложенные значения остаются общими,
// слой синхронизации их не интерпретирует.
func (m *PendingMutation) Clone() *PendingMutation {
	clone := *m
	if m.Payload != nil {
		clone.Payload = make(map[string]any, len(m.Payload))
		for k, v := range m.Payload {
			clone.Payload[k] = v
		}
	}
	return &clone
}

// SyncConflict представляет обнаруженное расхождение между локальным
// и серверным состоянием одной записи. Разрешенные конфликты не удаляются
// физически, а помечаются флагом Resolved (audit trail).
type SyncConflict struct {
	LocalData       map[string]any `json:"local_data"`       // LocalData локальный снимок записи
	ServerData      map[string]any `json:"server_data"`      // ServerData серверный снимок записи
	ID              string         `json:"id"`               // ID уникальный идентификатор конфликта
	EntityType      string         `json:"entity_type"`      // EntityType тип записи
	EntityID        string         `json:"entity_id"`        // EntityID идентификатор записи
	LocalTimestamp  int64          `json:"local_timestamp"`  // LocalTimestamp epoch millis локальной версии
	ServerTimestamp int64          `json:"server_timestamp"` // ServerTimestamp epoch millis серверной версии
	CreatedAt       int64          `json:"created_at"`       // CreatedAt время создания записи о конфликте
	DetectedAt      int64          `json:"detected_at"`      // DetectedAt время обнаружения конфликта
	Resolved        bool           `json:"resolved"`         // Resolved флаг soft-resolve
}

// Key возвращает ключ пары (entityType, entityId).
// Инвариант: одновременно может существовать не более одного
// неразрешенного конфликта на один ключ.
func (c *SyncConflict) Key() string {
	return c.EntityType + "/" + c.EntityID
}

// ResolutionStrategy определяет способ разрешения конфликта
type ResolutionStrategy string

// Supported resolution strategies
const (
	ResolveLocal  ResolutionStrategy = "local"
	ResolveServer ResolutionStrategy = "server"
	ResolveMerge  ResolutionStrategy = "merge"
)

// SyncProgress описывает прогресс текущей операции синхронизации.
// Существует только пока идет синхронизация.
type SyncProgress struct {
	Current    int     `json:"current"`    // Current номер обрабатываемого элемента
	Total      int     `json:"total"`      // Total общее количество элементов
	Percentage float64 `json:"percentage"` // Percentage процент выполнения 0..100
}

// NetworkQuality содержит последние измеренные характеристики сети.
// Данные советующие: корректность синхронизации от них не зависит.
type NetworkQuality struct {
	ConnectionType string  `json:"connection_type"` // ConnectionType "wifi", "cellular", "ethernet"
	DownloadSpeed  float64 `json:"download_speed"`  // DownloadSpeed Мбит/с
	UploadSpeed    float64 `json:"upload_speed"`    // UploadSpeed Мбит/с
	LatencyMS      int64   `json:"latency_ms"`      // LatencyMS задержка в миллисекундах
	LastMeasured   int64   `json:"last_measured"`   // LastMeasured epoch millis последнего измерения
}

// Metered reports whether the connection should be treated as metered
// for the purposes of the cellular sync gates.
func (q *NetworkQuality) Metered() bool {
	return q != nil && q.ConnectionType == "cellular"
}

// StorageQuota содержит снимок емкости локального хранилища.
// Используется только для предупреждения пользователя.
type StorageQuota struct {
	Total     int64 `json:"total"`     // Total общий объем, байты
	Used      int64 `json:"used"`      // Used занятый объем, байты
	Available int64 `json:"available"` // Available доступный объем, байты
	Warning   bool  `json:"warning"`   // Warning мягкий порог заполнения превышен
	Critical  bool  `json:"critical"`  // Critical жесткий порог заполнения превышен
}
