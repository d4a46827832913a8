package po

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// 点击类型。
const (
	ClickTypePin     = "pin"
	ClickTypeContact = "contact"
	ClickTypeWebsite = "website"
	ClickTypeMap     = "map"
	ClickTypeShare   = "share"
)

var validClickTypes = map[string]struct{}{
	ClickTypePin:     {},
	ClickTypeContact: {},
	ClickTypeWebsite: {},
	ClickTypeMap:     {},
	ClickTypeShare:   {},
}

// EventParams 描述构造曝光/点击事件所需的参数。
type EventParams struct {
	PinID     uuid.UUID
	BoardID   uuid.UUID
	SessionID string
	UserID    *uuid.UUID
	IPAddress string
	UserAgent string
	Referrer  string
	ClickType string
	CreatedAt time.Time
}

// NewImpression 基于参数构造 Impression 实例。
func NewImpression(params EventParams) Impression {
	entry := Impression{
		ID:        uuid.New(),
		PinID:     params.PinID,
		BoardID:   params.BoardID,
		SessionID: optionalString(params.SessionID),
		UserID:    cloneUUID(params.UserID),
		IPAddress: optionalString(params.IPAddress),
		UserAgent: optionalString(params.UserAgent),
		Referrer:  optionalString(params.Referrer),
		CreatedAt: params.CreatedAt,
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return entry
}

// NewClick 基于参数构造 Click 实例，未知的点击类型归一为 pin。
func NewClick(params EventParams) Click {
	entry := Click{
		ID:        uuid.New(),
		PinID:     params.PinID,
		BoardID:   params.BoardID,
		ClickType: NormalizeClickType(params.ClickType),
		SessionID: optionalString(params.SessionID),
		UserID:    cloneUUID(params.UserID),
		IPAddress: optionalString(params.IPAddress),
		UserAgent: optionalString(params.UserAgent),
		CreatedAt: params.CreatedAt,
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return entry
}

// NormalizeClickType 返回合法的点击类型。
func NormalizeClickType(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if _, ok := validClickTypes[v]; ok {
		return v
	}
	return ClickTypePin
}

func optionalString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	v := strings.TrimSpace(value)
	return &v
}

func cloneUUID(value *uuid.UUID) *uuid.UUID {
	if value == nil || *value == uuid.Nil {
		return nil
	}
	v := *value
	return &v
}
