// Package retry retries operations that fail transiently, waiting between
// attempts according to a backoff strategy.
//
// Citation lookups use it to retry DOI requests that fail with network
// errors or retryable HTTP statuses:
//
//	executor := retry.NewExecutor(retry.NewHTTPErrorClassifier(), retry.Fixed(1, mdlib.DefaultCitationRetryDelay))
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return fetch(ctx)
//	})
//
// # Error Classification
//
// An mdlib.ErrorClassifier decides which errors are worth another attempt.
// HTTPErrorClassifier treats network failures, 5xx and 429 responses as
// transient. Other statuses and context cancellation are final.
//
// # Thread Safety
//
// Executor instances are safe for concurrent use. WithOnRetry returns a
// new Executor rather than modifying the receiver.
package retry
