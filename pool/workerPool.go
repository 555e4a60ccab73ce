package pool

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

var ErrPoolClosed = errors.New("el pool ya fue cerrado")

// Task es una unidad de trabajo que corre exactamente una vez en un solo worker.
type Task func()

// message es lo que viaja por la cola: una tarea o una marca de terminacion.
type message struct {
	task Task
	stop bool
}

// WorkerPool
type WorkerPool struct {
	cantidadW int
	Workers   []*Worker
	Wg        sync.WaitGroup

	mu     sync.Mutex
	cond   *sync.Cond
	cola   []message
	closed bool
}

// NewWorkerPool crea el pool y arranca los n workers de inmediato.
func NewWorkerPool(cantidadW int) *WorkerPool {
	if cantidadW <= 0 {
		panic("pool: la cantidad de workers debe ser mayor que 0")
	}

	wp := &WorkerPool{cantidadW: cantidadW}
	wp.cond = sync.NewCond(&wp.mu)

	for i := 0; i < wp.cantidadW; i++ {
		worker := NewWorker(i)
		wp.Workers = append(wp.Workers, worker)
		wp.Wg.Add(1)
		go worker.Start(wp)
	}

	log.Info().Int("workers", cantidadW).Msg("WorkerPool iniciado")
	return wp
}

// Execute encola la tarea y retorna sin esperar a que corra.
func (wp *WorkerPool) Execute(task Task) error {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if wp.closed {
		return ErrPoolClosed
	}
	wp.cola = append(wp.cola, message{task: task})
	wp.cond.Signal()
	return nil
}

// Shutdown pone una marca de terminacion por worker en la misma cola de las tareas.
// Lo encolado antes corre; no espera a que los workers terminen.
func (wp *WorkerPool) Shutdown() {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if wp.closed {
		return
	}
	wp.closed = true
	for i := 0; i < wp.cantidadW; i++ {
		wp.cola = append(wp.cola, message{stop: true})
	}
	wp.cond.Broadcast()
	log.Debug().Int("workers", wp.cantidadW).Msg("Marcas de terminacion encoladas")
}

// Wait bloquea hasta que todos los workers salieron de su ciclo.
func (wp *WorkerPool) Wait() {
	wp.Wg.Wait()
}

func (wp *WorkerPool) Size() int {
	return wp.cantidadW
}

// Pending devuelve cuantos mensajes siguen en la cola.
func (wp *WorkerPool) Pending() int {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	return len(wp.cola)
}

// Snapshot copia el estado de cada worker.
func (wp *WorkerPool) Snapshot() []WorkerState {
	estados := make([]WorkerState, 0, len(wp.Workers))
	for _, w := range wp.Workers {
		estados = append(estados, w.State())
	}
	return estados
}

// next bloquea hasta que haya un mensaje; cada mensaje lo recibe un solo worker.
func (wp *WorkerPool) next() message {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	for len(wp.cola) == 0 {
		wp.cond.Wait()
	}
	msg := wp.cola[0]
	wp.cola[0] = message{}
	wp.cola = wp.cola[1:]
	return msg
}
