// Package sqlite provides the persisted vector store backed by a single
// SQLite database file.
//
// Chunks are stored with their embedding serialised as a little-endian
// float32 blob. Similarity search loads the candidate rows and ranks them
// by cosine similarity in process; at transcript scale (hundreds of
// chunks) a brute-force scan beats maintaining an ANN index.
//
// The database is the sole arbiter of consistency between concurrent
// indexing and querying: WAL mode plus a busy timeout make interleaved
// readers and writers safe without in-process locking.
package sqlite
