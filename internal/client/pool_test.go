package client

import (
	"errors"
	"fmt"
	"net/netip"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/udisondev/muconnect/internal/event"
)

func peer(ip string, port uint16) netip.AddrPort {
	return netip.AddrPortFrom(netip.MustParseAddr(ip), port)
}

func TestPool_GlobalCap(t *testing.T) {
	p := NewPool(2, 10)

	h1, err := p.Add(peer("10.0.0.1", 1000))
	if err != nil {
		t.Fatalf("unexpected admission error: %v", err)
	}
	_, err = p.Add(peer("10.0.0.2", 1001))
	if err != nil {
		t.Fatalf("unexpected admission error: %v", err)
	}

	if _, err := p.Add(peer("10.0.0.3", 1002)); !errors.Is(err, ErrGlobalFull) {
		t.Errorf("expected ErrGlobalFull, got %v", err)
	}

	h1.Release()
	if _, err := p.Add(peer("10.0.0.3", 1002)); err != nil {
		t.Errorf("expected admission after release, got %v", err)
	}
}

func TestPool_PerIPCap(t *testing.T) {
	p := NewPool(100, 2)

	_, err := p.Add(peer("10.0.0.1", 1000))
	require.NoError(t, err)
	_, err = p.Add(peer("10.0.0.1", 1001))
	require.NoError(t, err)

	_, err = p.Add(peer("10.0.0.1", 1002))
	var perIP *PerIPFullError
	require.ErrorAs(t, err, &perIP)
	require.Equal(t, netip.MustParseAddr("10.0.0.1"), perIP.IP)

	// A different address is unaffected.
	_, err = p.Add(peer("10.0.0.2", 1003))
	require.NoError(t, err)
}

func TestPool_ReleaseIdempotent(t *testing.T) {
	p := NewPool(10, 10)

	disconnects := 0
	p.OnDisconnect().Subscribe(func(a *event.Args[Client]) { disconnects++ })

	h, err := p.Add(peer("10.0.0.1", 1000))
	require.NoError(t, err)

	h.Release()
	h.Release()
	h.Release()

	require.Equal(t, 1, disconnects)
	require.Equal(t, 0, p.Len())
}

func TestPool_VetoAllocatesNothing(t *testing.T) {
	p := NewPool(10, 10)

	disconnects := 0
	p.OnConnect().Subscribe(func(a *event.Args[Client]) { a.PreventDefault() })
	p.OnDisconnect().Subscribe(func(a *event.Args[Client]) { disconnects++ })

	_, err := p.Add(peer("10.0.0.1", 1000))
	require.ErrorIs(t, err, ErrRejected)
	require.Equal(t, 0, p.Len())
	require.Equal(t, 0, disconnects)

	// The vetoed id must have returned to the pool.
	require.Equal(t, []ID{1}, p.ids.free)

	// A released id is handed out again by the next admission.
	p2 := NewPool(10, 10)
	h1, _ := p2.Add(peer("10.0.0.1", 1000))
	id1 := h1.Client().ID
	h1.Release()
	h2, _ := p2.Add(peer("10.0.0.1", 1000))
	require.Equal(t, id1, h2.Client().ID)
}

func TestPool_Get(t *testing.T) {
	p := NewPool(10, 10)

	h, err := p.Add(peer("10.0.0.1", 1000))
	require.NoError(t, err)

	c, err := p.Get(h.Client().ID)
	require.NoError(t, err)
	require.Equal(t, h.Client(), c)

	h.Release()
	_, err = p.Get(h.Client().ID)
	require.ErrorIs(t, err, ErrInexistentID)
}

func TestPool_IDsRecycled(t *testing.T) {
	p := NewPool(10, 10)

	h1, _ := p.Add(peer("10.0.0.1", 1000))
	h2, _ := p.Add(peer("10.0.0.1", 1001))
	require.NotEqual(t, h1.Client().ID, h2.Client().ID)

	h1.Release()
	h3, _ := p.Add(peer("10.0.0.1", 1002))
	require.Equal(t, h1.Client().ID, h3.Client().ID)
}

// Racing admissions and releases must never exceed either cap.
func TestPool_ConcurrentCaps(t *testing.T) {
	const capacity = 50
	const perIP = 3
	p := NewPool(capacity, perIP)

	var wg sync.WaitGroup
	for w := 0; w < 16; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			addr := fmt.Sprintf("10.0.0.%d", w%4)
			for i := 0; i < 100; i++ {
				h, err := p.Add(peer(addr, uint16(1000+i)))
				if err != nil {
					continue
				}
				if p.Len() > capacity {
					t.Errorf("global cap exceeded: %d", p.Len())
				}
				perAddr := 0
				p.mu.Lock()
				for _, c := range p.clients {
					if c.Peer.Addr() == h.Client().Peer.Addr() {
						perAddr++
					}
				}
				p.mu.Unlock()
				if perAddr > perIP {
					t.Errorf("per-ip cap exceeded for %s: %d", addr, perAddr)
				}
				h.Release()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 0, p.Len())
}
