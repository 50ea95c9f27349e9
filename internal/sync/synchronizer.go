package sync

import (
	"context"
	"fmt"
	stdsync "sync"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/click2025-space/clickers-workspace/internal/config"
	"github.com/click2025-space/clickers-workspace/internal/model"
	"github.com/click2025-space/clickers-workspace/internal/notify"
)

// Synchronizer maintains a locally coherent view of the workspace
// conversations out of three interleaved sources: the fixed-interval poll,
// the change feed (which degrades every event into a Refresh), and the
// user's own optimistic sends and deletes.
//
// The shared state is guarded by a mutex; every network call happens
// outside the lock and its result is folded in atomically when it lands.
// Overlapping refreshes are not serialized: the last response to arrive
// wins, which is the accepted trade-off absent per-record versioning.
type Synchronizer struct {
	store     MessageStore
	directory Directory
	notifier  Notifier
	focus     FocusProbe
	session   Session

	pollInterval time.Duration

	mu           stdsync.Mutex
	all          model.MessageList
	pending      model.MessageList
	selected     string
	lastObserved int
	baselined    bool
	closed       bool
	participants map[string]model.Participant

	onUpdate func()
}

func New(
	store MessageStore,
	directory Directory,
	notifier Notifier,
	focus FocusProbe,
	session Session,
	pollInterval time.Duration,
) *Synchronizer {
	return &Synchronizer{
		store:        store,
		directory:    directory,
		notifier:     notifier,
		focus:        focus,
		session:      session,
		pollInterval: pollInterval,
		selected:     model.BroadcastChannel,
		participants: make(map[string]model.Participant),
	}
}

// SetOnUpdate registers a hook invoked after every state change, so a UI
// can re-render. Must be called before Run.
func (s *Synchronizer) SetOnUpdate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = fn
}

// Run drives the fixed-interval poll until ctx is cancelled. The poll keeps
// ticking regardless of focus: it is the reliability backstop for the push
// feed. The first refresh seeds the notification baseline.
func (s *Synchronizer) Run(ctx context.Context) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	_ = s.Refresh(ctx)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Close()
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				logger.Error(fmt.Sprintf("poll refresh failed: %v", err))
			}
		}
	}
}

// Close makes late responses from in-flight operations no-ops.
func (s *Synchronizer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Refresh fetches the full message set and replaces the known state with
// merge(server, pending). On failure the last-known-good state stays
// renderable; the error is reported but never reaches the render path.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	server, err := s.store.List(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}

	s.all = merge(server, s.pending)
	newcomers := s.observeLocked()
	s.mu.Unlock()

	s.dispatch(ctx, newcomers)
	s.notifyUpdate()

	return nil
}

// observeLocked seeds the baseline on the first pass and returns the tail
// of messages beyond the last observed count afterwards. The count delta is
// a deliberately cheap newcomer heuristic, not a diff.
func (s *Synchronizer) observeLocked() model.MessageList {
	if !s.baselined {
		s.baselined = true
		s.lastObserved = len(s.all)
		return nil
	}

	if len(s.all) <= s.lastObserved {
		s.lastObserved = len(s.all)
		return nil
	}

	newcomers := make(model.MessageList, len(s.all)-s.lastObserved)
	copy(newcomers, s.all[s.lastObserved:])
	s.lastObserved = len(s.all)

	return newcomers
}

// Send appends a provisional message immediately, then issues the create
// call. On success the provisional is discarded and the refresh triggered
// on settle adopts the confirmed record, so the two copies never coexist.
// On failure the provisional is removed, restoring the prior state.
func (s *Synchronizer) Send(ctx context.Context, channel string, body model.Body) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	provisional := model.Message{
		ID:       model.ProvisionalIDPrefix + uuid.New().String(),
		SenderID: s.session.UserID,
		Channel:  channel,
		Body:     body,
		SentAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("synchronizer is closed")
	}
	s.pending = append(s.pending, provisional)
	s.all = append(s.all, provisional)
	sortMessages(s.all)
	s.mu.Unlock()

	s.notifyUpdate()

	_, err := s.store.Create(ctx, channel, body)

	s.mu.Lock()
	s.pending = removeByID(s.pending, provisional.ID)
	s.all = removeByID(s.all, provisional.ID)
	s.mu.Unlock()

	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		s.notifyUpdate()
		return err
	}

	return s.Refresh(ctx)
}

// Delete optimistically removes one of the viewer's own messages, issues
// the store delete, restores the record on failure, and re-fetches on
// settle either way.
func (s *Synchronizer) Delete(ctx context.Context, messageID string) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("synchronizer is closed")
	}

	var removed *model.Message
	for i := range s.all {
		if s.all[i].ID == messageID {
			msg := s.all[i]
			removed = &msg
			break
		}
	}

	if removed == nil {
		s.mu.Unlock()
		return model.ErrMessageNotFound
	}

	if removed.SenderID != s.session.UserID {
		s.mu.Unlock()
		return model.ErrNotMessageSender
	}

	s.all = removeByID(s.all, messageID)
	s.mu.Unlock()

	s.notifyUpdate()

	err := s.store.Delete(ctx, messageID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete message: %v", err))

		s.mu.Lock()
		if !s.closed && !containsID(s.all, messageID) {
			s.all = append(s.all, *removed)
			sortMessages(s.all)
		}
		s.mu.Unlock()

		s.notifyUpdate()
	}

	_ = s.Refresh(ctx)

	return err
}

// SelectConversation is a pure state transition; the ambient poll and feed
// keep the data fresh.
func (s *Synchronizer) SelectConversation(channel string) {
	s.mu.Lock()
	s.selected = channel
	s.mu.Unlock()

	s.notifyUpdate()
}

func (s *Synchronizer) SelectedConversation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Visible returns the ordered messages of the selected conversation.
func (s *Synchronizer) Visible() model.MessageList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return visible(s.all, s.session.UserID, s.selected)
}

// dispatch runs the notification pass over freshly observed messages.
func (s *Synchronizer) dispatch(ctx context.Context, newcomers model.MessageList) {
	if len(newcomers) == 0 {
		return
	}

	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	focused := s.focus.Focused()

	s.mu.Lock()
	selected := s.selected
	s.mu.Unlock()

	refreshed := false
	for _, m := range newcomers {
		if !notify.ShouldNotify(m, s.session.UserID, selected, focused) {
			continue
		}

		sender, ok := s.lookupParticipant(m.SenderID)
		if !ok && !refreshed {
			// One directory re-fetch per pass covers senders that joined
			// after the cache was built.
			refreshed = true
			s.refreshParticipants(ctx)
			sender, _ = s.lookupParticipant(m.SenderID)
		}

		if err := s.notifier.Notify(notify.Render(m, sender, s.session.UserID)); err != nil {
			logger.Error(fmt.Sprintf("failed to dispatch notification: %v", err))
		}
	}
}

func (s *Synchronizer) lookupParticipant(id string) (model.Participant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.participants[id]
	return p, ok
}

func (s *Synchronizer) refreshParticipants(ctx context.Context) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	participants, err := s.directory.ListParticipants(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list participants: %v", err))
		return
	}

	s.mu.Lock()
	for _, p := range participants {
		s.participants[p.ID] = p
	}
	s.mu.Unlock()
}

func (s *Synchronizer) notifyUpdate() {
	s.mu.Lock()
	fn := s.onUpdate
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func removeByID(list model.MessageList, id string) model.MessageList {
	out := make(model.MessageList, 0, len(list))
	for _, m := range list {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}
