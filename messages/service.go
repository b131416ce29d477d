// SPDX-License-Identifier: GPL-3.0-only

package messages

import "fmt"

// Dispatcher accepts a text payload for asynchronous delivery to the message
// consumer. Dispatch returning nil means accepted for processing, not durably
// stored.
type Dispatcher interface {
	Dispatch(text string) error
}

// Service composes the read path (list request → repository → formatter) and
// the write path (validator → dispatcher). No logic beyond composition and
// error propagation.
type Service struct {
	Repo     *Repository
	Queue    Dispatcher
	MaxLimit int
}

func NewService(repo *Repository, queue Dispatcher, maxLimit int) *Service {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return &Service{Repo: repo, Queue: queue, MaxLimit: maxLimit}
}

// ListFormatted resolves raw query parameters into a filtered, paginated page
// of wire-shaped messages.
func (s *Service) ListFormatted(status, page, limit string) ([]MessageDetails, error) {
	req, err := ParseListRequest(status, page, limit, s.MaxLimit)
	if err != nil {
		return nil, err
	}
	msgs, err := s.Repo.ListByFilter(req)
	if err != nil {
		return nil, err
	}
	return FormatMessages(msgs), nil
}

// Submit validates the text and hands it to the queue. The message is not yet
// durable when Submit returns.
func (s *Service) Submit(text string) error {
	if err := ValidateText(text); err != nil {
		return err
	}
	if err := s.Queue.Dispatch(text); err != nil {
		return fmt.Errorf("failed to dispatch message: %w", err)
	}
	return nil
}
