package bootstrap

import (
	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
	eventv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/event/v1"
	historyv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/history/v1"
	batchauction "github.com/muhammadchandra19/auctionhouse/internal/usecase/batch-auction"
	"github.com/muhammadchandra19/auctionhouse/internal/usecase/bank"
	"github.com/muhammadchandra19/auctionhouse/internal/usecase/callback"
	eventpublisher "github.com/muhammadchandra19/auctionhouse/internal/usecase/event-publisher"
	feemanager "github.com/muhammadchandra19/auctionhouse/internal/usecase/fee-manager"
	"github.com/muhammadchandra19/auctionhouse/internal/usecase/history"
	"github.com/muhammadchandra19/auctionhouse/internal/usecase/registry"
	"github.com/muhammadchandra19/auctionhouse/internal/usecase/router"
	"github.com/muhammadchandra19/auctionhouse/internal/usecase/snapshot"
	"github.com/muhammadchandra19/auctionhouse/internal/usecase/vesting"
)

// Usecase is the usecase layer for the settlement daemon.
type Usecase struct {
	Ledger       *bank.Ledger
	Registry     *registry.Registry
	BatchAuction *batchauction.Module
	Vesting      *vesting.Module
	Fees         *feemanager.Manager
	Dispatcher   *callback.Dispatcher
	Publisher    eventv1.Publisher
	Router       *router.Router
	Snapshots    *snapshot.Manager
	History      historyv1.Usecase
}

// registerUsecase registers the usecase layer. Order matters: the router is
// built last so every collaborator exists, and snapshot parts are registered
// with stable names older checkpoints can still restore into.
func (b *Bootstrap) registerUsecase() error {
	routerAccount := bankv1.Address(b.Config.RouterAccount)

	b.Usecase.Ledger = bank.NewLedger()
	b.Usecase.Registry = registry.NewRegistry()

	b.Usecase.BatchAuction = batchauction.NewModule(b.Config.SettlePeriod)
	if err := b.Usecase.Registry.Install(b.Usecase.BatchAuction); err != nil {
		return err
	}
	b.Usecase.Vesting = vesting.NewModule()
	if err := b.Usecase.Registry.Install(b.Usecase.Vesting); err != nil {
		return err
	}

	b.Usecase.Fees = feemanager.NewManager(
		bankv1.Address(b.Config.AdminAccount),
		bankv1.Address(b.Config.ProtocolAccount),
	)
	b.Usecase.Dispatcher = callback.NewDispatcher(b.Usecase.Ledger, routerAccount)

	if b.Config.Kafka.Enabled() {
		b.Usecase.Publisher = eventpublisher.NewPublisher(b.Config.Kafka, b.Logger)
	} else {
		b.Usecase.Publisher = eventpublisher.NewNoopPublisher()
	}

	b.Usecase.Router = router.NewRouter(
		routerAccount,
		b.Usecase.Ledger,
		b.Usecase.Registry,
		b.Usecase.Fees,
		b.Usecase.Dispatcher,
		b.Usecase.Publisher,
		b.Logger,
		router.WithMaxSettleBatch(b.Config.MaxSettleBatch),
	)

	store := snapshot.NewRedisStore(b.Redis, b.Config.SnapshotKey, b.Logger)
	b.Usecase.Snapshots = snapshot.NewManager(store, b.Logger)
	parts := []struct {
		name        string
		snapshotter snapshot.Snapshotter
	}{
		{"router", b.Usecase.Router},
		{"bank", b.Usecase.Ledger},
		{"fees", b.Usecase.Fees},
		{"batch-auction", b.Usecase.BatchAuction},
	}
	for _, part := range parts {
		if err := b.Usecase.Snapshots.Register(part.name, part.snapshotter); err != nil {
			return err
		}
	}

	if b.Repository.LotEventRepository != nil {
		b.Usecase.History = history.NewUsecase(b.Repository.LotEventRepository, b.Logger)
	}
	return nil
}
