package pool

import (
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	Disponible = "disponible"
	Ocupado    = "ocupado"
)

// Worker
type Worker struct {
	ID int

	mu         sync.RWMutex
	status     string
	procesadas int
	fallidas   int
}

// WorkerState es la foto de un worker que se expone en /status.
type WorkerState struct {
	ID         int    `json:"pid"`
	Status     string `json:"state"`
	Procesadas int    `json:"processed"`
	Fallidas   int    `json:"failed"`
}

func NewWorker(id int) *Worker {
	return &Worker{
		ID:     id,
		status: Disponible,
	}
}

func (w *Worker) Start(wp *WorkerPool) {
	defer wp.Wg.Done()

	for {
		msg := wp.next()
		if msg.stop {
			log.Debug().Int("worker", w.ID).Msg("Cerrando worker")
			return
		}

		w.setStatus(Ocupado)
		ok := w.run(msg.task)
		w.finish(ok)
	}
}

// run ejecuta la tarea; un panic se registra y el worker sigue vivo.
func (w *Worker) run(task Task) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Int("worker", w.ID).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("Tarea abortada")
			ok = false
		}
	}()

	task()
	return true
}

func (w *Worker) setStatus(s string) {
	w.mu.Lock()
	w.status = s
	w.mu.Unlock()
}

func (w *Worker) finish(ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.status = Disponible
	if ok {
		w.procesadas++
	} else {
		w.fallidas++
	}
}

func (w *Worker) State() WorkerState {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return WorkerState{
		ID:         w.ID,
		Status:     w.status,
		Procesadas: w.procesadas,
		Fallidas:   w.fallidas,
	}
}
