package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DateWindowDays длина окна бронирования: сегодня + 6 следующих дней
const DateWindowDays = 7

// Default geometry для новой фигуры стола на карте офиса
const (
	DefaultShapeX      = 50.0
	DefaultShapeY      = 50.0
	DefaultShapeWidth  = 100.0
	DefaultShapeHeight = 50.0
	DefaultShapeFill   = "gray"
)

// UnknownUserName подставляется вместо отображаемого имени,
// когда его не удалось получить из UserService
const UnknownUserName = "Unknown User"

// Business validation constants
const (
	MaxOfficeSpaceNameLength = 120
	MaxDeskNameLength        = 120
)
