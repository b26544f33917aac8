package internal

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"yatta-chat/domain"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key          string
	Conversation string
	Timestamp    string
	MessageID    string
	Sender       string
	Text         string
}

type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer exposes the local message archive over HTTP for
// inspection. Read-only; it never writes to the database.
func StartDebugServer(db *badger.DB, port int, endpoint string, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "msg:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, MessageMapper(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}

// MessageMapper renders one archive entry. Keys follow
// msg:<conversation>:<timestamp-nanos>:<message-id>.
func MessageMapper(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:          key,
		Conversation: "--------",
		Timestamp:    "--:--:--",
		MessageID:    "--------",
		Text:         "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	parts := strings.Split(key, ":")
	if len(parts) >= 4 {
		row.Conversation = parts[1]
		if tsNano, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			row.Timestamp = time.Unix(0, tsNano).Format("15:04:05")
		}
		row.MessageID = parts[3]
	}

	var m domain.Message
	if err := json.Unmarshal(val, &m); err == nil {
		row.Sender = m.Sender.Username
		row.Text = m.Text
	}
	return row
}
