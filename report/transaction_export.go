package report

import (
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"connectrpc.com/connect"
	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_iface"
	"github.com/pdcgo/pool_service/pool_model"
)

type ConnectStreamWriter struct {
	stream *connect.ServerStream[pool_iface.TransactionExportResponse]
	c      int
}

// Write implements io.Writer.
func (c *ConnectStreamWriter) Write(p []byte) (n int, err error) {
	err = c.stream.Send(&pool_iface.TransactionExportResponse{
		Chunk: string(p),
	})
	if err != nil {
		return 0, err
	}

	c.c += len(p)
	return len(p), nil
}

func optionalID(id *uint) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*id), 10)
}

// TransactionExport implements pool_ifaceconnect.ReportServiceHandler.
func (r *reportServiceImpl) TransactionExport(
	ctx context.Context,
	req *connect.Request[pool_iface.TransactionExportRequest],
	stream *connect.ServerStream[pool_iface.TransactionExportResponse],
) error {
	var err error
	db := r.db.WithContext(ctx)
	pay := req.Msg

	err = r.
		auth.
		AuthIdentityFromHeader(req.Header()).
		HasPermission(authorization_iface.CheckPermissionGroup{
			&pool_model.Transaction{}: &authorization_iface.CheckPermission{
				DomainID: authorization_iface.RootDomain,
				Actions:  []authorization_iface.Action{authorization_iface.Read},
			},
		}).
		Err()
	if err != nil {
		return err
	}

	writer := &ConnectStreamWriter{stream: stream}
	csvWriter := csv.NewWriter(writer)

	err = csvWriter.Write([]string{
		"id",
		"created_at",
		"type",
		"business_id",
		"business",
		"user_id",
		"username",
		"actor_id",
		"actor",
		"amount",
		"desc",
	})
	if err != nil {
		return err
	}
	csvWriter.Flush()

	err = NewTransactionView(db).
		BusinessID(pay.BusinessID).
		Since(pay.Since).
		Iterate(func(row *transactionRow) error {
			err := csvWriter.Write([]string{
				strconv.FormatUint(uint64(row.ID), 10),
				row.CreatedAt.Format(time.RFC3339),
				row.Type,
				optionalID(row.BusinessID),
				row.BusinessName,
				optionalID(row.UserID),
				row.Username,
				optionalID(row.ActorID),
				row.ActorName,
				row.Amount.StringFixed(2),
				row.Description,
			})
			if err != nil {
				return err
			}

			csvWriter.Flush()
			return csvWriter.Error()
		})

	return err
}
