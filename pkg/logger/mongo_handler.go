// Package logger — mongo_handler.go
//
// MongoHandler is an slog.Handler that asynchronously mirrors log records into
// a MongoDB collection while forwarding them to the wrapped handler. It is
// designed for zero impact on the hot request path:
//
//   - Records are enqueued into a buffered channel (non-blocking).
//   - A single background goroutine drains the channel and performs
//     InsertMany in batches.
//   - If the channel is full the record is dropped; logging must never block
//     application code.
//   - Graceful shutdown: call Close() to flush and disconnect.
package logger

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoQueueSize = 4096
	mongoBatchSize = 50
	mongoDrainTick = 2 * time.Second
)

// LogDocument is the shape written to MongoDB.
type LogDocument struct {
	Time      time.Time `bson:"time"`
	Level     string    `bson:"level"`
	Msg       string    `bson:"msg"`
	RequestID string    `bson:"request_id,omitempty"`
	Attrs     bson.M    `bson:"attrs,omitempty"`
}

// MongoHandler mirrors records to MongoDB asynchronously.
type MongoHandler struct {
	inner  slog.Handler
	client *mongo.Client
	col    *mongo.Collection
	queue  chan LogDocument
	done   chan struct{}
}

// NewMongoHandler connects to uri and returns a handler that forwards every
// record to inner and additionally stores it in <db>.logs.
func NewMongoHandler(inner slog.Handler, uri, db string) (*MongoHandler, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	h := &MongoHandler{
		inner:  inner,
		client: client,
		col:    client.Database(db).Collection("logs"),
		queue:  make(chan LogDocument, mongoQueueSize),
		done:   make(chan struct{}),
	}
	go h.drain()
	return h, nil
}

func (h *MongoHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *MongoHandler) Handle(ctx context.Context, r slog.Record) error {
	doc := LogDocument{
		Time:  r.Time,
		Level: r.Level.String(),
		Msg:   r.Message,
		Attrs: bson.M{},
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "request_id" {
			doc.RequestID = a.Value.String()
			return true
		}
		doc.Attrs[a.Key] = a.Value.Any()
		return true
	})

	select {
	case h.queue <- doc:
	default:
		// Queue full: drop rather than block the request path.
	}

	return h.inner.Handle(ctx, r)
}

func (h *MongoHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &MongoHandler{
		inner:  h.inner.WithAttrs(attrs),
		client: h.client,
		col:    h.col,
		queue:  h.queue,
		done:   h.done,
	}
}

func (h *MongoHandler) WithGroup(name string) slog.Handler {
	return &MongoHandler{
		inner:  h.inner.WithGroup(name),
		client: h.client,
		col:    h.col,
		queue:  h.queue,
		done:   h.done,
	}
}

// drain batches queued documents into InsertMany calls.
func (h *MongoHandler) drain() {
	ticker := time.NewTicker(mongoDrainTick)
	defer ticker.Stop()

	batch := make([]interface{}, 0, mongoBatchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		_, _ = h.col.InsertMany(ctx, batch)
		cancel()
		batch = batch[:0]
	}

	for {
		select {
		case doc := <-h.queue:
			batch = append(batch, doc)
			if len(batch) >= mongoBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-h.done:
			for {
				select {
				case doc := <-h.queue:
					batch = append(batch, doc)
				default:
					flush()
					return
				}
			}
		}
	}
}

// Close flushes pending documents and disconnects the client.
func (h *MongoHandler) Close() error {
	close(h.done)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return h.client.Disconnect(ctx)
}

// EnableMongo swaps the package logger for one that also writes to MongoDB.
// Called at server start when LOG_MONGO_URI is configured; returns the handler
// so the caller can Close it on shutdown.
func EnableMongo(uri, db string) (*MongoHandler, error) {
	h, err := NewMongoHandler(L.Handler(), uri, db)
	if err != nil {
		return nil, err
	}
	L = slog.New(h)
	slog.SetDefault(L)
	return h, nil
}
