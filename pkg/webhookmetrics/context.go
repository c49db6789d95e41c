package webhookmetrics

import "context"

func contextWithTarget(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, targetKey{}, name)
}

func targetFromContext(ctx context.Context) string {
	name, _ := ctx.Value(targetKey{}).(string)
	return name
}
