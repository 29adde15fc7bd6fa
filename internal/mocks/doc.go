// Package mocks provides shared test doubles.
//
// Stores are mocked with testify/mock (UserStore, ProductStore, OrderStore);
// their WithTx returns the mock itself so expectations set up front also
// apply inside transactions. Services are mocked with function fields
// (MockUserService, MockProductService, MockOrderService) for handler tests:
//
//	svc := &mocks.MockProductService{
//	    GetProductFn: func(ctx context.Context, id int64) (*domain.Product, error) {
//	        return nil, store.ErrProductNotFound
//	    },
//	}
package mocks
