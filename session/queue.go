package session

import "pgwire/pgerr"

// rowQueue is a FIFO of raw row payloads (§4.6), slice-based with a head
// index rather than container/list — the teacher's PgConn.rxBuf is a single
// growable buffer for the same reason: avoid a pointer-chasing structure on
// a hot path.
type rowQueue struct {
	buf  [][]byte
	head int
}

func (q *rowQueue) push(row []byte) {
	q.buf = append(q.buf, row)
}

func (q *rowQueue) empty() bool {
	return q.head >= len(q.buf)
}

func (q *rowQueue) size() int {
	return len(q.buf) - q.head
}

func (q *rowQueue) front() ([]byte, error) {
	if q.empty() {
		return nil, pgerr.ErrQueueEmpty
	}
	return q.buf[q.head], nil
}

func (q *rowQueue) pop() ([]byte, error) {
	row, err := q.front()
	if err != nil {
		return nil, err
	}
	q.buf[q.head] = nil
	q.head++
	q.compact()
	return row, nil
}

func (q *rowQueue) clear() {
	q.buf = nil
	q.head = 0
}

// compact discards the consumed prefix once it dominates the backing array,
// so a long-lived session draining rows one at a time does not retain an
// ever-growing slice.
func (q *rowQueue) compact() {
	if q.head > 0 && q.head == len(q.buf) {
		q.buf = nil
		q.head = 0
	} else if q.head > 1024 && q.head*2 > len(q.buf) {
		q.buf = append([][]byte(nil), q.buf[q.head:]...)
		q.head = 0
	}
}

// notificationQueue is a FIFO of already-formatted strings (§4.6).
type notificationQueue struct {
	buf  []string
	head int
}

func (q *notificationQueue) push(msg string) {
	q.buf = append(q.buf, msg)
}

func (q *notificationQueue) empty() bool {
	return q.head >= len(q.buf)
}

func (q *notificationQueue) size() int {
	return len(q.buf) - q.head
}

func (q *notificationQueue) front() (string, error) {
	if q.empty() {
		return "", pgerr.ErrQueueEmpty
	}
	return q.buf[q.head], nil
}

func (q *notificationQueue) pop() (string, error) {
	msg, err := q.front()
	if err != nil {
		return "", err
	}
	q.head++
	q.compact()
	return msg, nil
}

func (q *notificationQueue) clear() {
	q.buf = nil
	q.head = 0
}

func (q *notificationQueue) compact() {
	if q.head > 0 && q.head == len(q.buf) {
		q.buf = nil
		q.head = 0
	} else if q.head > 1024 && q.head*2 > len(q.buf) {
		q.buf = append([]string(nil), q.buf[q.head:]...)
		q.head = 0
	}
}
