package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func TestValidator(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	s.True(IsValidAddress("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"))
	s.False(IsValidAddress("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13"))
	s.False(IsValidAddress("not-an-address"))
	s.False(IsValidAddress(""))
}
