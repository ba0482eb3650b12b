// Copyright 2024 camellia-mall
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{name: "待处理到已确认", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "待处理直达已收款", from: StatusPending, to: StatusPaymentReceived, want: true},
		{name: "待处理直达已送达", from: StatusPending, to: StatusDelivered, want: true},
		{name: "待处理可取消", from: StatusPending, to: StatusCancelled, want: true},
		{name: "已确认可取消", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "已确认到已收款", from: StatusConfirmed, to: StatusPaymentReceived, want: true},
		{name: "已收款到处理中", from: StatusPaymentReceived, to: StatusProcessing, want: true},
		{name: "处理中到已发货", from: StatusProcessing, to: StatusShipped, want: true},
		{name: "已发货到已送达", from: StatusShipped, to: StatusDelivered, want: true},

		{name: "已收款不可取消", from: StatusPaymentReceived, to: StatusCancelled, want: false},
		{name: "已发货不可取消", from: StatusShipped, to: StatusCancelled, want: false},
		{name: "不能跳过发货直接送达", from: StatusProcessing, to: StatusDelivered, want: false},
		{name: "不能倒退", from: StatusShipped, to: StatusProcessing, want: false},
		{name: "送达是终态", from: StatusDelivered, to: StatusPaymentReceived, want: false},
		{name: "取消是终态", from: StatusCancelled, to: StatusPending, want: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}
