package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// ActionType engine operation type
type ActionType int

const (
	// ActionTypeDefault default
	ActionTypeDefault ActionType = iota
	// ActionTypeDeposit deposit collateral
	ActionTypeDeposit
	// ActionTypeMint mint debt token
	ActionTypeMint
	// ActionTypeBurn burn debt token
	ActionTypeBurn
	// ActionTypeRedeem redeem collateral
	ActionTypeRedeem
	// ActionTypeDepositAndMint deposit then mint
	ActionTypeDepositAndMint
	// ActionTypeRedeemForDebt burn then redeem
	ActionTypeRedeemForDebt
	// ActionTypeLiquidate liquidate a broken vault
	ActionTypeLiquidate
)

const (
	// TransactionKeyLiquidator liquidator user id :string
	TransactionKeyLiquidator = "liquidator"
	// TransactionKeySeizedAmount seized collateral amount :decimal
	TransactionKeySeizedAmount = "seized_amount"
	// TransactionKeyBonusAmount bonus share of the seized amount :decimal
	TransactionKeyBonusAmount = "bonus_amount"
	// TransactionKeyDebt outstanding debt after the operation :decimal
	TransactionKeyDebt = "debt"
	// TransactionKeyHealthFactor health factor after the operation :string
	TransactionKeyHealthFactor = "health_factor"
	// TransactionKeyMintAmount minted amount :decimal
	TransactionKeyMintAmount = "mint_amount"
)

// ExtraDataFormatter formats journal extra data
type ExtraDataFormatter interface {
	Format() []byte
}

// TransactionExtraData extra data
type TransactionExtraData map[string]interface{}

// NewTransactionExtra new transaction extra instance
func NewTransactionExtra() TransactionExtraData {
	return make(TransactionExtraData)
}

// Put put data
func (t TransactionExtraData) Put(key string, value interface{}) {
	t[key] = value
}

// String read a value back as string
func (t TransactionExtraData) String(key string) string {
	return cast.ToString(t[key])
}

// Format format as []byte by default
func (t TransactionExtraData) Format() []byte {
	bs, e := json.Marshal(t)
	if e != nil {
		return []byte("{}")
	}

	return bs
}

// TransactionStatus transaction status
type TransactionStatus int

const (
	// TransactionStatusInit init
	TransactionStatusInit TransactionStatus = iota
	// TransactionStatusComplete complete
	TransactionStatusComplete
	// TransactionStatusAbort abort
	TransactionStatusAbort
)

// Transaction journal row of a completed engine operation
type Transaction struct {
	ID        int64             `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	Action    ActionType        `json:"action,omitempty"`
	TraceID   string            `sql:"size:36;unique_index:idx_transactions_trace_id" json:"trace_id,omitempty"`
	UserID    string            `sql:"size:36;index:idx_transactions_user_id" json:"user_id,omitempty"`
	FollowID  string            `sql:"size:36;index:idx_transactions_follow_id" json:"follow_id,omitempty"`
	AssetID   string            `sql:"size:36;index:idx_transactions_asset_id" json:"asset_id,omitempty"`
	Amount    decimal.Decimal   `sql:"type:decimal(32,8)" json:"amount,omitempty"`
	Data      types.JSONText    `sql:"type:TEXT" json:"data,omitempty"`
	Status    TransactionStatus `sql:"default:1" json:"status,omitempty"`
	CreatedAt time.Time         `sql:"default:CURRENT_TIMESTAMP;index:idx_transactions_created_at" json:"created_at,omitempty"`
	UpdatedAt time.Time         `sql:"default:CURRENT_TIMESTAMP" json:"updated_at,omitempty"`
}

// SetExtraData set the journal extra payload
func (t *Transaction) SetExtraData(extra ExtraDataFormatter) {
	data := []byte("{}")
	if extra != nil {
		data = extra.Format()
	}

	t.Data = data
}

// ITransactionStore transaction store interface
type ITransactionStore interface {
	Create(ctx context.Context, transaction *Transaction) error
	FindByTraceID(ctx context.Context, traceID string) (*Transaction, error)
	List(ctx context.Context, offset time.Time, limit int) ([]*Transaction, error)
}
