package medialib

import (
	"testing"

	. "github.com/karlseguin/expect"
)

type ItemTests struct{}

func Test_Item(t *testing.T) {
	Expectify(new(ItemTests), t)
}

func (i *ItemTests) BelongsToItsOwner() {
	owner := NewList(Natural[int]())
	item := newItem(1, any(owner))
	Expect(item.belongsTo(any(owner))).To.Equal(true)
	Expect(item.belongsTo(any(NewList(Natural[int]())))).To.Equal(false)
}

func (i *ItemTests) ReleasedItemsBelongNowhere() {
	owner := NewList(Natural[int]())
	item, _ := owner.Insert(1)
	owner.Insert(2)
	item.release()
	Expect(item.belongsTo(any(owner))).To.Equal(false)
	Expect(item.next == nil).To.Equal(true)
}

func (i *ItemTests) NilBelongsNowhere() {
	var item *Item[int]
	Expect(item.belongsTo(nil)).To.Equal(false)
}
