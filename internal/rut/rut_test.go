package rut

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RutSuite struct {
	suite.Suite
}

func TestRutSuite(t *testing.T) {
	suite.Run(t, new(RutSuite))
}

func (s *RutSuite) TestValidate() {
	s.Run("accepts correct verifier", func() {
		// body 12345678: weighted sum 138, 138 % 11 = 6, verifier 11-6 = 5
		s.True(Validate("12345678-5"))
		s.True(Validate("123456785"))
		s.True(Validate("12.345.678-5"))
	})

	s.Run("accepts 7 digit body", func() {
		// body 1234567: weighted sum 106, 106 % 11 = 7, verifier 4
		s.True(Validate("1234567-4"))
	})

	s.Run("verifier K is case-insensitive", func() {
		// body 11111112: weighted sum 34, 34 % 11 = 1, verifier 11-1 = 10 -> K
		s.True(Validate("11111112-K"))
		s.True(Validate("11111112-k"))
	})

	s.Run("verifier 11 maps to zero", func() {
		// body 12345675: weighted sum 132, 132 % 11 = 0, verifier 11 -> 0
		s.True(Validate("12345675-0"))
	})

	s.Run("rejects wrong verifier", func() {
		s.False(Validate("12345678-4"))
		s.False(Validate("12345678-K"))
		s.False(Validate("12345675-K"))
	})

	s.Run("rejects malformed input", func() {
		s.False(Validate(""))
		s.False(Validate("-"))
		s.False(Validate("abc"))
		s.False(Validate("123456"))       // body too short
		s.False(Validate("123456789-5"))  // body too long
		s.False(Validate("1234567a-5"))   // non-digit in body
		s.False(Validate("12345678-X"))   // bad verifier char
	})

	s.Run("all separators are stripped before checking", func() {
		s.True(Validate("12..345..678--5"))
	})
}

// TestSingleVerifierPerBody checks the checksum uniqueness property: for any
// body, exactly one of the eleven candidate verifiers is accepted.
func (s *RutSuite) TestSingleVerifierPerBody() {
	candidates := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "K"}
	for _, body := range []string{"12345678", "11111111", "99999999", "1234567", "87654321"} {
		accepted := 0
		for _, v := range candidates {
			if Validate(body + "-" + v) {
				accepted++
			}
		}
		s.Equal(1, accepted, fmt.Sprintf("body %s", body))
	}
}

func (s *RutSuite) TestFormat() {
	s.Run("inserts dots and dash", func() {
		s.Equal("12.345.678-9", Format("123456789"))
		s.Equal("1.234.567-4", Format("12345674"))
	})

	s.Run("verifier is carried over untouched", func() {
		s.Equal("11.111.112-k", Format("11111112k"))
	})

	s.Run("idempotent over already formatted input", func() {
		formatted := Format("123456789")
		s.Equal(formatted, Format(formatted))
	})

	s.Run("best effort on short input", func() {
		s.Equal("", Format(""))
		s.Equal("1", Format("1"))
		s.Equal("1-2", Format("12"))
	})
}
