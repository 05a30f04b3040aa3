package services

import "errors"

// Các loại lỗi mà controller dịch sang HTTP status.
// So sánh bằng errors.Is.
var (
	ErrNotFound        = errors.New("không tìm thấy dữ liệu cho ID đã cho")
	ErrForbidden       = errors.New("người dùng không phải chủ sở hữu")
	ErrAlreadyExists   = errors.New("dữ liệu đã tồn tại")
	ErrInvalidArgument = errors.New("tham số không hợp lệ")
	ErrNoData          = errors.New("không có dữ liệu thính giả")
	ErrDivisionByZero  = errors.New("tổng lượt click bằng 0")
)
