package repository_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/okian/xiaozhao/internal/adapters/repository"
	"github.com/okian/xiaozhao/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func snapshot(desc string, n int) repository.Snapshot {
	return repository.Snapshot{
		Description: desc,
		UploadedAt:  time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
		RecordCount: n,
		Bundle:      &stats.Bundle{Total: n},
	}
}

func TestMemoryStore(t *testing.T) {
	Convey("Given an empty in-memory snapshot store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()

		Convey("When nothing has been processed", func() {
			_, err := store.Latest(ctx)
			So(errors.Is(err, repository.ErrNoSnapshot), ShouldBeTrue)
			So(store.Count(ctx), ShouldEqual, 0)
			So(store.History(ctx), ShouldBeEmpty)
		})

		Convey("When storing a snapshot without an id", func() {
			stored, err := store.Put(ctx, snapshot("九月批次", 120))

			So(err, ShouldBeNil)
			So(stored.ID, ShouldNotBeEmpty)

			Convey("Then it becomes the latest", func() {
				latest, err := store.Latest(ctx)
				So(err, ShouldBeNil)
				So(latest.ID, ShouldEqual, stored.ID)
				So(latest.Bundle.Total, ShouldEqual, 120)
			})

			Convey("And it is retrievable by id", func() {
				got, err := store.Get(ctx, stored.ID)
				So(err, ShouldBeNil)
				So(got.Description, ShouldEqual, "九月批次")
			})
		})

		Convey("When looking up an unknown id", func() {
			_, err := store.Get(ctx, "missing")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})

		Convey("When storing several snapshots", func() {
			first, _ := store.Put(ctx, snapshot("第一批", 10))
			second, _ := store.Put(ctx, snapshot("第二批", 20))
			third, _ := store.Put(ctx, snapshot("第三批", 30))

			Convey("Then history lists them newest first", func() {
				history := store.History(ctx)
				So(history, ShouldHaveLength, 3)
				So(history[0].ID, ShouldEqual, third.ID)
				So(history[1].ID, ShouldEqual, second.ID)
				So(history[2].ID, ShouldEqual, first.ID)
			})

			Convey("And Clear drops everything", func() {
				store.Clear(ctx)
				So(store.Count(ctx), ShouldEqual, 0)
				_, err := store.Latest(ctx)
				So(errors.Is(err, repository.ErrNoSnapshot), ShouldBeTrue)
			})
		})
	})

	Convey("Given a store bounded to three snapshots", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(repository.WithHistorySize(3))

		Convey("When storing five snapshots", func() {
			ids := make([]string, 5)
			for i := 0; i < 5; i++ {
				stored, err := store.Put(ctx, snapshot("批次"+strconv.Itoa(i+1), i+1))
				So(err, ShouldBeNil)
				ids[i] = stored.ID
			}

			Convey("Then only the newest three remain", func() {
				So(store.Count(ctx), ShouldEqual, 3)
				history := store.History(ctx)
				So(history[0].ID, ShouldEqual, ids[4])
				So(history[2].ID, ShouldEqual, ids[2])
			})

			Convey("And evicted snapshots are no longer retrievable", func() {
				_, err := store.Get(ctx, ids[0])
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}
