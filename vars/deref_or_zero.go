package vars

func DerefOrZero[T any](ptr *T) (ret T) {
	if ptr == nil {
		return
	}
	return *ptr
}

func Ptr[T any](value T) *T {
	return &value
}
