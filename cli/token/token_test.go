package token_test

import (
	"math/big"
	"testing"

	"github.com/bebop-dex/go-sdk/cli/token"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/stretchr/testify/suite"
)

type ParseAmountTestSuite struct {
	suite.Suite
}

func TestRunParseAmountTestSuite(t *testing.T) {
	suite.Run(t, new(ParseAmountTestSuite))
}

func (s *ParseAmountTestSuite) Test_Max() {
	amount, err := token.ParseAmount("max")

	s.Nil(err)
	s.Equal(math.MaxBig256, amount)
}

func (s *ParseAmountTestSuite) Test_BaseUnits() {
	amount, err := token.ParseAmount("1000000")

	s.Nil(err)
	s.Equal(big.NewInt(1000000), amount)
}

func (s *ParseAmountTestSuite) Test_Invalid() {
	_, err := token.ParseAmount("1.5")
	s.NotNil(err)

	_, err = token.ParseAmount("-1")
	s.NotNil(err)

	_, err = token.ParseAmount(new(big.Int).Add(math.MaxBig256, big.NewInt(1)).String())
	s.NotNil(err)
}
