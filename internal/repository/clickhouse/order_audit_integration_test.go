package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/datagate7000-backend/internal/model"
)

func (s *RepositorySuite) TestInsertVerifiedOrders() {
	verifiedAt := time.Now().UTC().Truncate(time.Second)
	orders := []model.OrderAudit{
		{
			TxID:       "0x2222000000000000000000000000000000000000000000000000000000002222",
			AssetID:    "0x1111000000000000000000000000000000000000000000000000000000001111",
			ServiceID:  "1",
			Sender:     "0x00c6a0bc5cd2095d1e412ac9d1facec23d1b9d56",
			Receiver:   "0x068ed00cf0441e4829d9784fcbe7b9e26d4bd8d0",
			Amount:     "1000",
			Settled:    "998",
			VerifiedAt: verifiedAt,
		},
		{
			TxID:       "0x3333000000000000000000000000000000000000000000000000000000003333",
			AssetID:    "0x1111000000000000000000000000000000000000000000000000000000001111",
			ServiceID:  "2",
			Sender:     "0x00c6a0bc5cd2095d1e412ac9d1facec23d1b9d56",
			Receiver:   "0x068ed00cf0441e4829d9784fcbe7b9e26d4bd8d0",
			Amount:     "500",
			Settled:    "499",
			VerifiedAt: verifiedAt.Add(time.Second),
		},
	}

	s.metrics.EXPECT().Observe("insert_verified_orders", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertVerifiedOrders(s.testCtx, orders))
	s.Equal(uint64(2), s.countRows("verified_orders"))

	rows, err := s.repo.conn.Query(s.testCtx, `
SELECT tx_id, settled
FROM verified_orders
ORDER BY verified_at`)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(rows.Close())
	}()

	var got []model.OrderAudit
	for rows.Next() {
		var audit model.OrderAudit
		s.Require().NoError(rows.Scan(&audit.TxID, &audit.Settled))
		got = append(got, audit)
	}
	s.Require().NoError(rows.Err())

	s.Require().Len(got, 2)
	s.Equal(orders[0].TxID, got[0].TxID)
	s.Equal("998", got[0].Settled)
	s.Equal(orders[1].TxID, got[1].TxID)
	s.Equal("499", got[1].Settled)
}
