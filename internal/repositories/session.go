package repositories

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Session 表示一次数据库事务会话，nil 表示直接使用连接池。
type Session interface {
	Tx() pgx.Tx
}

type txSession struct {
	tx pgx.Tx
}

func (s txSession) Tx() pgx.Tx { return s.tx }

// TxManager 负责开启与提交事务。
type TxManager struct {
	db  *pgxpool.Pool
	log *log.Helper
}

// NewTxManager 构造 TxManager。
func NewTxManager(db *pgxpool.Pool, logger log.Logger) *TxManager {
	return &TxManager{
		db:  db,
		log: log.NewHelper(logger),
	}
}

// WithinTx 在单个事务中执行 fn，fn 返回错误时回滚。
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, sess Session) error) error {
	err := pgx.BeginFunc(ctx, m.db, func(tx pgx.Tx) error {
		return fn(ctx, txSession{tx: tx})
	})
	if err != nil {
		m.log.WithContext(ctx).Warnw("msg", "transaction rolled back", "error", err)
		return fmt.Errorf("within tx: %w", err)
	}
	return nil
}
