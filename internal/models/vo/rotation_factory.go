package vo

import (
	"github.com/google/uuid"
	"github.com/localsquares/board-rotation/internal/models/po"
)

// PinCardFromPin 根据 Pin 快照构造 PinCard。
func PinCardFromPin(pin *po.Pin, featuredPinID *uuid.UUID) PinCard {
	if pin == nil {
		return PinCard{}
	}
	card := PinCard{
		PinID:        pin.ID.String(),
		BoardID:      pin.BoardID.String(),
		Title:        pin.Title,
		Caption:      derefString(pin.Caption),
		ImageURL:     pin.ImageURL,
		ThumbnailURL: derefString(pin.ThumbnailURL),
		Featured:     featuredPinID != nil && *featuredPinID == pin.ID,
	}
	if pin.CreatedAt != nil && !pin.CreatedAt.IsZero() {
		ts := pin.CreatedAt.UTC()
		card.CreatedAt = &ts
	}
	return card
}

// PinCardsFromPins 按顺序转换整组 Pin。
func PinCardsFromPins(pins []*po.Pin, featuredPinID *uuid.UUID) []PinCard {
	cards := make([]PinCard, 0, len(pins))
	for _, pin := range pins {
		if pin == nil {
			continue
		}
		cards = append(cards, PinCardFromPin(pin, featuredPinID))
	}
	return cards
}

func derefString(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
