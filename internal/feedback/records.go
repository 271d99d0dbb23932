package feedback

import (
	"time"

	"go.uber.org/zap"
)

const (
	SellerFeedbackPrefix = "ft_feedback_"
	DealerReviewPrefix   = "ft_dealer_reviews_"
	BuyerHistoryPrefix   = "ft_buyers_"

	AnonymousAuthor = "anonymous"
	UnknownBuyer    = "unknown"
)

type Review struct {
	From      string `json:"from"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Timestamp int64  `json:"timestamp"`
}

type BuyerEntry struct {
	Address   string `json:"address"`
	Name      string `json:"name"`
	Note      string `json:"note"`
	Timestamp int64  `json:"timestamp"`
}

func normalizeReview(r Review, now time.Time) Review {
	if r.From == "" {
		r.From = AnonymousAuthor
	}
	if r.Timestamp == 0 {
		r.Timestamp = now.UnixMilli()
	}
	return r
}

func normalizeBuyer(b BuyerEntry, now time.Time) BuyerEntry {
	if b.Address == "" {
		b.Address = UnknownBuyer
	}
	if b.Timestamp == 0 {
		b.Timestamp = now.UnixMilli()
	}
	return b
}

func NewSellerFeedback(st Store, log *zap.SugaredLogger) *Journal[Review] {
	return NewJournal(st, JournalConfig[Review]{
		Prefix:    SellerFeedbackPrefix,
		Lowercase: true,
		Kind:      "seller",
		Normalize: normalizeReview,
	}, log)
}

func NewDealerReviews(st Store, log *zap.SugaredLogger) *Journal[Review] {
	return NewJournal(st, JournalConfig[Review]{
		Prefix:    DealerReviewPrefix,
		Lowercase: true,
		Kind:      "dealer",
		Normalize: normalizeReview,
	}, log)
}

// NewBuyerHistory keys entries by batch id, which is used verbatim.
func NewBuyerHistory(st Store, log *zap.SugaredLogger) *Journal[BuyerEntry] {
	return NewJournal(st, JournalConfig[BuyerEntry]{
		Prefix:    BuyerHistoryPrefix,
		Kind:      "buyer",
		Normalize: normalizeBuyer,
	}, log)
}

// AverageRating is nil for an empty list.
func AverageRating(reviews []Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return &avg
}
