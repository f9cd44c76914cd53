package algo

import "github.com/san-kum/algoviz/internal/step"

type Selection struct{}

func NewSelection() *Selection {
	return &Selection{}
}

func (a *Selection) Name() string {
	return "selection"
}

func (a *Selection) Run(input []int, tr *step.Tracer) []int {
	nums := clone(input)
	n := len(nums)
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if tr.Stopped() {
				return nums
			}
			if nums[j] < nums[minIdx] {
				minIdx = j
			}
			if !tr.Emit(nums, minIdx, j) {
				return nums
			}
		}
		// the swap itself is not surfaced
		nums[i], nums[minIdx] = nums[minIdx], nums[i]
	}
	return nums
}
