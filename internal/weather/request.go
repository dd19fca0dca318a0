package weather

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle status of a Request.
type RequestStatus string

const (
	StatusIdle    RequestStatus = "idle"
	StatusPending RequestStatus = "pending"
	StatusSuccess RequestStatus = "success"
	StatusFailed  RequestStatus = "error"
)

// RequestOptions holds optional lifecycle callbacks.
// Callbacks run on the goroutine that settled the call, outside the Request lock.
type RequestOptions struct {
	OnSuccess func(Forecast)
	OnError   func(error)
}

// RequestState is a point-in-time copy of a Request's state.
type RequestState struct {
	Status     RequestStatus  `json:"status"`
	Params     ForecastParams `json:"params"`
	Data       *Forecast      `json:"data,omitempty"`
	Err        error          `json:"-"`
	Generation uint64         `json:"generation"`
	TriggerID  string         `json:"triggerId,omitempty"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// Ticket identifies one Trigger call.
type Ticket struct {
	ID         string `json:"id"`
	Generation uint64 `json:"generation"`
	done       <-chan struct{}
}

// Done is closed once the triggered call has settled, whether its result was
// applied or discarded as stale.
func (t Ticket) Done() <-chan struct{} {
	return t.done
}

// Request wraps a Forecaster in an imperative, stateful trigger.
//
// Every Trigger bumps a generation counter and cancels the previous in-flight call.
// Only the result belonging to the latest generation is written to state and passed
// to the callbacks; stale results are dropped.
type Request struct {
	client Forecaster
	opts   RequestOptions
	now    func() time.Time

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	state      RequestState
}

// NewRequest creates an idle Request.
func NewRequest(client Forecaster, opts RequestOptions) *Request {
	return &Request{
		client: client,
		opts:   opts,
		now:    func() time.Time { return time.Now().UTC() },
		state:  RequestState{Status: StatusIdle},
	}
}

// Trigger moves the Request to pending and issues exactly one client call in the
// background. The call is bound to ctx and to the next Trigger or Reset.
func (r *Request) Trigger(ctx context.Context, params ForecastParams) Ticket {
	callCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.generation++
	gen := r.generation
	id := uuid.NewString()
	r.cancel = cancel
	r.state = RequestState{
		Status:     StatusPending,
		Params:     params,
		Generation: gen,
		TriggerID:  id,
		UpdatedAt:  r.now(),
	}
	r.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		forecast, err := r.client.GetForecast(callCtx, params.CityKey, params.Days)
		r.settle(gen, forecast, err)
	}()

	return Ticket{ID: id, Generation: gen, done: done}
}

// Do triggers a call and waits for it to settle.
// It returns ErrSuperseded if another Trigger replaced this one in the meantime.
func (r *Request) Do(ctx context.Context, params ForecastParams) (Forecast, error) {
	t := r.Trigger(ctx, params)

	select {
	case <-t.Done():
	case <-ctx.Done():
		return Forecast{}, ctx.Err()
	}

	st := r.State()
	if st.Generation != t.Generation {
		return Forecast{}, ErrSuperseded
	}
	if st.Err != nil {
		return Forecast{}, st.Err
	}
	if st.Data == nil {
		return Forecast{}, ErrSuperseded
	}
	return *st.Data, nil
}

// State returns a copy of the current state.
func (r *Request) State() RequestState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Reset cancels any in-flight call and returns the Request to idle.
func (r *Request) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.generation++
	r.state = RequestState{
		Status:     StatusIdle,
		Generation: r.generation,
		UpdatedAt:  r.now(),
	}
}

func (r *Request) settle(gen uint64, forecast Forecast, err error) {
	r.mu.Lock()
	if gen != r.generation {
		r.mu.Unlock()
		return
	}

	r.cancel = nil
	r.state.UpdatedAt = r.now()
	if err != nil {
		r.state.Status = StatusFailed
		r.state.Err = err
	} else {
		r.state.Status = StatusSuccess
		r.state.Data = &forecast
	}
	r.mu.Unlock()

	if err != nil {
		if r.opts.OnError != nil {
			r.opts.OnError(err)
		}
		return
	}
	if r.opts.OnSuccess != nil {
		r.opts.OnSuccess(forecast)
	}
}
