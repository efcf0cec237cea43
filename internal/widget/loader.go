package widget

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

var ErrScriptUnavailable = errors.New("payment widget script unavailable")

// Loader проверяет доступность скрипта виджета. Успешная загрузка запоминается на все
// время жизни процесса, неуспешная нет: следующая попытка оплаты пробует снова.
type Loader struct {
	mu     sync.Mutex
	loaded bool
	client *http.Client
	url    string
}

func NewLoader(client *http.Client, scriptURL string) *Loader {
	return &Loader{client: client, url: scriptURL}
}

func (l *Loader) Ensure(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScriptUnavailable, err)
	}

	res, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScriptUnavailable, err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrScriptUnavailable, res.StatusCode)
	}

	l.loaded = true
	return nil
}

func (l *Loader) ScriptURL() string {
	return l.url
}
