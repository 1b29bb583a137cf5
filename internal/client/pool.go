package client

import (
	"errors"
	"fmt"
	"net/netip"
	"sync"

	"github.com/udisondev/muconnect/internal/event"
)

// ID identifies an admitted client session.
type ID uint32

// Client is one admitted client connection.
type Client struct {
	ID   ID
	Peer netip.AddrPort
}

func (c Client) String() string {
	return fmt.Sprintf("%s <%d>", c.Peer, c.ID)
}

var (
	// ErrGlobalFull is returned when the pool is at its global capacity.
	ErrGlobalFull = errors.New("max client capacity")

	// ErrRejected is returned when a connect subscriber vetoed the admission.
	ErrRejected = errors.New("client rejected")

	// ErrInexistentID is returned for an unknown client id.
	ErrInexistentID = errors.New("inexistent client id")
)

// PerIPFullError is returned when an address is at its per-IP capacity.
type PerIPFullError struct {
	IP netip.Addr
}

func (e *PerIPFullError) Error() string {
	return fmt.Sprintf("max client capacity for ip %s", e.IP)
}

// Pool tracks admitted client sessions and enforces the global and per-IP
// caps. Both checks, the id allocation and the connect dispatch share one
// critical section, so two racing admissions cannot both pass a cap at its
// boundary.
type Pool struct {
	mu      sync.Mutex
	clients map[ID]Client
	ids     idPool

	capacity      int
	capacityPerIP int

	onConnect    *event.Bus[Client]
	onDisconnect *event.Bus[Client]
}

// NewPool creates a pool with the given caps.
func NewPool(capacity, capacityPerIP int) *Pool {
	return &Pool{
		clients:       make(map[ID]Client),
		capacity:      capacity,
		capacityPerIP: capacityPerIP,
		onConnect:     event.New[Client](),
		onDisconnect:  event.New[Client](),
	}
}

// OnConnect is dispatched inside the admission critical section; a subscriber
// calling PreventDefault vetoes the admission.
func (p *Pool) OnConnect() *event.Bus[Client] { return p.onConnect }

// OnDisconnect is dispatched when an admitted client's handle is released.
// It never fires for a vetoed admission.
func (p *Pool) OnDisconnect() *event.Bus[Client] { return p.onDisconnect }

// Add admits a client. On success the returned handle owns the pool entry;
// releasing it removes the entry and recycles the id.
func (p *Pool) Add(peer netip.AddrPort) (*Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.clients) >= p.capacity {
		return nil, ErrGlobalFull
	}

	ip := peer.Addr()
	perIP := 0
	for _, c := range p.clients {
		if c.Peer.Addr() == ip {
			perIP++
		}
	}
	if perIP >= p.capacityPerIP {
		return nil, &PerIPFullError{IP: ip}
	}

	id := p.ids.acquire()
	c := Client{ID: id, Peer: peer}
	p.clients[id] = c

	if !p.onConnect.Dispatch(c) {
		// Vetoed: roll back before the handle exists, without a
		// disconnect event.
		delete(p.clients, id)
		p.ids.release(id)
		return nil, ErrRejected
	}

	return &Handle{pool: p, client: c}, nil
}

// Get returns a copy of the entry for id.
func (p *Pool) Get(id ID) (Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, exists := p.clients[id]
	if !exists {
		return Client{}, ErrInexistentID
	}
	return c, nil
}

// Len returns the number of admitted clients.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.clients)
}

// Handle owns one pool entry for the lifetime of a session.
type Handle struct {
	pool    *Pool
	client  Client
	release sync.Once
}

// Client returns the admitted client.
func (h *Handle) Client() Client {
	return h.client
}

// Release removes the entry, recycles the id and dispatches the disconnect
// event. Safe to call from any exit path; only the first call has effect.
func (h *Handle) Release() {
	h.release.Do(func() {
		p := h.pool
		p.mu.Lock()
		delete(p.clients, h.client.ID)
		p.ids.release(h.client.ID)
		p.onDisconnect.Dispatch(h.client)
		p.mu.Unlock()
	})
}
