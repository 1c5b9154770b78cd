package model

import "time"

// Item — единственная сущность приложения, документ коллекции items.
type Item struct {
	ID   string    `gorm:"primaryKey" json:"id"`
	Name *string   `json:"name"` // nil хранится как есть, без валидации
	Date time.Time `gorm:"not null" json:"date"`
}

// ApplyDefaults заполняет поля, которые проставляет сервер при сохранении.
// Вызывается хранилищем непосредственно перед вставкой.
// Дата усекается до миллисекунд: точнее BSON datetime не хранит, и ответ
// на POST должен совпадать с тем, что потом вернёт GET.
func (it *Item) ApplyDefaults(now time.Time) {
	if it.Date.IsZero() {
		it.Date = now.UTC().Truncate(time.Millisecond)
	}
}

// NewItem собирает новый документ из имени, пришедшего от клиента.
// id и date клиент не задаёт.
func NewItem(name *string) *Item {
	return &Item{Name: name}
}
