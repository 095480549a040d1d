package note

import (
	"context"
)

// Repository - контракт хранилища записей: коллекция пользователя
// пополняется только добавлением, записи не обновляются на месте,
// удаление возможно только целиком через Wipe.
type Repository interface {
	Append(ctx context.Context, username string, n *Note) error
	List(ctx context.Context, username string) ([]*Note, error)
	Get(ctx context.Context, username, id string) (*Note, error)
	Wipe(ctx context.Context, username string) error
	Count(ctx context.Context, username string) (int, error)
}
