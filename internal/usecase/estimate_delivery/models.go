package estimate_delivery

// Request модель запроса на оценку расстояния и платы за доставку
type Request struct {
	UserID  int64  // ID пользователя
	Address string // Строка адреса для геокодирования
}

// Response модель ответа с оценкой
// Оценка возвращается и для точек вне радиуса доставки: плата считается
// для отображения, блокировка отправки - зона ответственности агрегатора
type Response struct {
	Latitude   float64 // Геокодированная широта
	Longitude  float64 // Геокодированная долгота
	DistanceKm float64 // Расстояние от склада по большому кругу
	Fee        int     // Плата за доставку по тарифной сетке
	OutOfRange bool    // Точка за пределами maxDistanceKm
}
