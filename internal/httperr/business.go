package httperr

import "errors"

// BusinessError carrega um código estável de regra de negócio,
// para o handler traduzir em status HTTP + mensagem. Nunca se
// compara mensagem de erro por substring.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// BusinessCode extrai o código quando err é um BusinessError.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
