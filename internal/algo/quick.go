package algo

import "github.com/san-kum/algoviz/internal/step"

// Quick is a Lomuto quicksort with the last element as pivot.
type Quick struct{}

func NewQuick() *Quick {
	return &Quick{}
}

func (a *Quick) Name() string {
	return "quick"
}

func (a *Quick) Run(input []int, tr *step.Tracer) []int {
	nums := clone(input)
	a.sort(nums, 0, len(nums)-1, tr)
	return nums
}

func (a *Quick) sort(nums []int, low, high int, tr *step.Tracer) {
	if low >= high || tr.Stopped() {
		return
	}
	p, ok := a.partition(nums, low, high, tr)
	if !ok {
		return
	}
	a.sort(nums, low, p-1, tr)
	a.sort(nums, p+1, high, tr)
}

// partition reports false when the run was stopped mid-partition; the pivot
// is then left where it is.
func (a *Quick) partition(nums []int, low, high int, tr *step.Tracer) (int, bool) {
	pivot := nums[high]
	i := low - 1
	for j := low; j < high; j++ {
		if tr.Stopped() {
			return i + 1, false
		}
		if nums[j] <= pivot {
			i++
			nums[i], nums[j] = nums[j], nums[i]
			if !tr.Emit(nums, i, j, high) {
				return i + 1, false
			}
		}
	}
	nums[i+1], nums[high] = nums[high], nums[i+1]
	return i + 1, true
}
