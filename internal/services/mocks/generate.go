package mocks

//go:generate go run github.com/golang/mock/mockgen -destination=mock_pin_store.go -package=mocks github.com/localsquares/board-rotation/internal/services PinStore
//go:generate go run github.com/golang/mock/mockgen -destination=mock_featured_booking_store.go -package=mocks github.com/localsquares/board-rotation/internal/services FeaturedBookingStore
//go:generate go run github.com/golang/mock/mockgen -destination=mock_engagement_store.go -package=mocks github.com/localsquares/board-rotation/internal/services EngagementStore
//go:generate go run github.com/golang/mock/mockgen -destination=mock_transactor.go -package=mocks github.com/localsquares/board-rotation/internal/services Transactor
