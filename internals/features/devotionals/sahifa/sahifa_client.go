// file: internals/features/devotionals/sahifa/sahifa_client.go
package sahifa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Sumber: teks Arab + terjemahan Persia di-fetch per dua dari erfan.ir
// dan di-parse dari HTML. Konten sumber statis, jadi hasil parse di-cache
// selama proses hidup dan tidak pernah di-invalidate.

const (
	// TotalDuas: jumlah dua dalam Sahifa Sajjadiya.
	TotalDuas = 54

	defaultBaseURL = "https://erfan.ir/farsi"
	userAgent      = "khatm-app/1.0 (+https://erfan.ir/)"
)

// ErrSourceUnavailable: fetch/parse sumber gagal. Transient — boleh di-retry
// oleh client, dan TIDAK boleh menyentuh cursor kampanye.
var ErrSourceUnavailable = errors.New("sahifa source unavailable")

// Verse adalah satu unit ayat dua (Arab + terjemahan).
type Verse struct {
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
}

type Client struct {
	BaseURL string
	HTTP    *http.Client

	mu    sync.RWMutex
	cache map[int][]Verse
}

func NewClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		cache:   make(map[int][]Verse),
	}
}

// Verses mengambil (atau mengembalikan dari cache) seluruh ayat dua ke-id.
// Pengisian cache oleh beberapa caller pertama secara bersamaan tidak
// masalah: hasilnya idempoten.
func (c *Client) Verses(ctx context.Context, id int) ([]Verse, error) {
	if id < 1 || id > TotalDuas {
		return nil, fmt.Errorf("%w: dua %d out of range", ErrSourceUnavailable, id)
	}

	c.mu.RLock()
	cached, ok := c.cache[id]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	verses, err := c.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[id] = verses
	c.mu.Unlock()
	return verses, nil
}

func (c *Client) fetch(ctx context.Context, id int) ([]Verse, error) {
	// halaman mengikuti pola /farsi/sahifeh<ID>/10011/
	url := fmt.Sprintf("%s/sahifeh%d/10011/", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: dua %d status %d", ErrSourceUnavailable, id, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	verses := parseVersesFromHTML(string(body))
	if len(verses) == 0 {
		// jangan pernah fallback ke 1 unit: total yang salah merusak wraparound
		return nil, fmt.Errorf("%w: no verses parsed for dua %d", ErrSourceUnavailable, id)
	}
	return verses, nil
}

// ItemTitle: judul tampilan untuk dua ke-id.
func ItemTitle(id int) string {
	return fmt.Sprintf("دعای %d صحیفه سجادیه", id)
}
