package submit_delivery

import "fmt"

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: пустой запрос", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: некорректный идентификатор пользователя", ErrInvalidInput)
	}
	if len(req.SelectedCodes) == 0 {
		return fmt.Errorf("%w: не выбраны брони для доставки", ErrInvalidInput)
	}
	if !req.DeliveryType.IsValid() {
		return fmt.Errorf("%w: неизвестный тип доставки %q", ErrInvalidInput, req.DeliveryType)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: не указан номер телефона", ErrInvalidInput)
	}
	if req.Address1 == "" {
		return fmt.Errorf("%w: не указан адрес доставки", ErrInvalidInput)
	}
	return nil
}
