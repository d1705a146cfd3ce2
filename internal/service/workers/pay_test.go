package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/V4U-MarketplaceService/pkg/ptr"
)

func TestComputePay(t *testing.T) {
	// без рейтинга выплата равна базовой ставке
	assert.Equal(t, 100.0, ComputePay(100, nil))

	// бонусный тариф
	assert.Equal(t, 120.0, ComputePay(100, ptr.Ptr(4.6)))
	assert.Equal(t, 120.0, ComputePay(100, ptr.Ptr(4.5)))

	// стандартный тариф
	assert.Equal(t, 100.0, ComputePay(100, ptr.Ptr(4.0)))
	assert.Equal(t, 100.0, ComputePay(100, ptr.Ptr(3.5)))

	// пониженный тариф
	assert.Equal(t, 80.0, ComputePay(100, ptr.Ptr(3.2)))
	assert.Equal(t, 80.0, ComputePay(100, ptr.Ptr(3.0)))

	// отстранение: разрыв ровно на 3.0
	assert.Equal(t, 0.0, ComputePay(100, ptr.Ptr(2.9)))
	assert.Equal(t, 0.0, ComputePay(100, ptr.Ptr(0.0)))
}
