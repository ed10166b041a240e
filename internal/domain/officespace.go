package domain

import "time"

// OfficeSpace represents a tenant-like grouping owning desks and a layout document
type OfficeSpace struct {
	ID   string
	Name string

	// LayoutDocument сериализованное представление всех фигур столов (JSON массив)
	// Единственная durable форма разметки; пустая строка эквивалентна "[]"
	LayoutDocument string

	CreatedAt time.Time
}

// OfficeSpaceSummary элемент списка офисов с производным количеством столов
type OfficeSpaceSummary struct {
	OfficeSpace
	DeskCount int
}
