package clickhouse

import (
	"github.com/golang/mock/gomock"
)

func (s *RepositorySuite) TestClaimIfUnique() {
	const (
		assetID  = "0x1111000000000000000000000000000000000000000000000000000000001111"
		consumer = "0x00c6a0bc5cd2095d1e412ac9d1facec23d1b9d56"
		txID     = "0x2222000000000000000000000000000000000000000000000000000000002222"
	)

	s.metrics.EXPECT().Observe("claim_if_unique", gomock.Nil(), gomock.Any()).Times(3)

	claimed, err := s.repo.ClaimIfUnique(s.testCtx, assetID, consumer, txID)
	s.Require().NoError(err)
	s.True(claimed)

	claimed, err = s.repo.ClaimIfUnique(s.testCtx, assetID, consumer, txID)
	s.Require().NoError(err)
	s.False(claimed)

	// A different settlement transaction for the same asset is a new claim.
	otherTx := "0x3333000000000000000000000000000000000000000000000000000000003333"
	claimed, err = s.repo.ClaimIfUnique(s.testCtx, assetID, consumer, otherTx)
	s.Require().NoError(err)
	s.True(claimed)

	s.Equal(uint64(2), s.countRows("access_tokens"))
}
