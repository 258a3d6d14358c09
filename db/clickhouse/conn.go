package clickhouse

import (
	"context"
	"net"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/openfms/telematics-engine/telemetry"
)

type EventDBConn interface {
	GetConn() driver.Conn
	SaveEvents(ctx context.Context, events []*telemetry.Event) error
}

var _ EventDBConn = &EventDataBase{}

type EventDataBase struct {
	ClickhouseConn driver.Conn
}

func (edb *EventDataBase) GetConn() driver.Conn {
	return edb.ClickhouseConn
}

func ConnectEventDB(databaseURL string) (*EventDataBase, error) {
	opts, err := clickhouse.ParseDSN(databaseURL)
	if err != nil {
		return nil, err
	}
	opts.DialContext = func(ctx context.Context, addr string) (net.Conn, error) {
		var d net.Dialer
		return d.DialContext(ctx, "tcp", addr)
	}
	opts.Compression = &clickhouse.Compression{
		Method: clickhouse.CompressionLZ4,
	}
	opts.DialTimeout = time.Second * 30
	opts.MaxOpenConns = 5
	opts.MaxIdleConns = 5
	opts.ConnMaxLifetime = time.Duration(10) * time.Minute
	opts.ConnOpenStrategy = clickhouse.ConnOpenInOrder

	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, err
	}
	if e := conn.Ping(context.Background()); e != nil {
		return nil, e
	}
	return &EventDataBase{
		ClickhouseConn: conn,
	}, nil
}
