package layout

import "errors"

var (
	// ErrMalformedLayout возвращается, когда layout document не удается декодировать:
	// не JSON, не массив, либо элементы не соответствуют форме DeskShape
	ErrMalformedLayout = errors.New("layout: malformed layout document")

	// ErrInvalidShape возвращается при сериализации некорректной фигуры
	ErrInvalidShape = errors.New("layout: invalid desk shape")
)
