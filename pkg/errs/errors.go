package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
)

var (
	ErrInternalServer          = errors.New("Nimadir xato ketdi, keyinroq qayta urinib ko'ring")
	ErrClient                  = errors.New("Yaroqsiz ma'lumotlar")
	ErrNotLoggedIn             = errors.New("Avtorizatsiyadan o'tilmagan")
	ErrInvalidCredentials      = errors.New("Telefon raqam yoki parol noto'g'ri!")
	ErrPhoneAlreadyUsed        = errors.New("Bu telefon raqamdan allaqachon foydalanilgan")
	ErrInvalidBotToken         = errors.New("Telegram bot tokeni yaroqsiz")
	ErrSellerNotFound          = errors.New("Foydalanuvchi topilmadi")
	ErrCategoryNotFound        = errors.New("Kategoriya topilmadi")
	ErrCategoryNameAlreadyUsed = errors.New("Bu nomdagi kategoriya allaqachon mavjud")
	ErrCategoryHasProducts     = errors.New("Bu kategoriyada mahsulotlar mavjud, avval ularni o'chirish kerak")
	ErrProductNotFound         = errors.New("Mahsulot topilmadi")
	ErrProductHasOrderItems    = errors.New("Bu mahsulotga bog'langan buyurtmalar mavjud, avval ularni o'chirish kerak")
)

var errorMap = map[error]int{
	ErrInternalServer:          ErrStatusInternalServer,
	ErrClient:                  ErrStatusClient,
	ErrNotLoggedIn:             ErrStatusNotLoggedIn,
	ErrInvalidCredentials:      ErrStatusNotLoggedIn,
	ErrPhoneAlreadyUsed:        ErrStatusConflict,
	ErrInvalidBotToken:         ErrStatusClient,
	ErrSellerNotFound:          ErrStatusNotFound,
	ErrCategoryNotFound:        ErrStatusNotFound,
	ErrCategoryNameAlreadyUsed: ErrStatusConflict,
	ErrCategoryHasProducts:     ErrStatusConflict,
	ErrProductNotFound:         ErrStatusNotFound,
	ErrProductHasOrderItems:    ErrStatusConflict,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
