package looseJSON

import (
	"sync"

	"github.com/panjf2000/ants/v2"
)

// DecodeAll decodes independent documents concurrently on a worker pool,
// one pooled parser per input. Either every input decodes and the caller
// owns all returned documents, or the first error is returned and every
// partially built document is released.
func DecodeAll(inputs []string, parallelism int) ([]*Document, error) {
	if parallelism <= 0 {
		parallelism = 1
	}

	pool, err := ants.NewPool(parallelism)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	docs := make([]*Document, len(inputs))
	errs := make([]error, len(inputs))

	wg := &sync.WaitGroup{}
	for i := range inputs {
		i := i
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			docs[i], errs[i] = DecodeString(inputs[i])
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			for _, doc := range docs {
				Release(doc)
			}
			return nil, err
		}
	}

	return docs, nil
}
