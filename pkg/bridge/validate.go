package bridge

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/chainsafe/ckbridge-starter/pkg/subaccount"
	"github.com/chainsafe/ckbridge-starter/pkg/token"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("principal", func(fl validator.FieldLevel) bool {
		_, err := subaccount.Decode(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("nat", func(fl validator.FieldLevel) bool {
		_, err := ParseNat(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("asset", func(fl validator.FieldLevel) bool {
		_, err := token.ParseAsset(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks a request record against its validate tags.
func Validate(req any) error {
	return validate.Struct(req)
}

// ParseNat parses a non-negative decimal integer without sign or separators.
func ParseNat(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("invalid amount %q", s)
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return n, nil
}

// ValidationMessage renders validator errors as a short client-facing message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "principal":
		return fmt.Sprintf("%s is not a valid principal", fe.Field())
	case "nat":
		return fmt.Sprintf("%s must be a non-negative integer", fe.Field())
	case "eth_addr":
		return fmt.Sprintf("%s is not a valid Ethereum address", fe.Field())
	case "asset":
		return fmt.Sprintf("%s must be one of eth, usdc", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
