package algo

import "github.com/san-kum/algoviz/internal/step"

type Bubble struct{}

func NewBubble() *Bubble {
	return &Bubble{}
}

func (a *Bubble) Name() string {
	return "bubble"
}

// Run emits one frame per adjacent comparison, swap or not.
func (a *Bubble) Run(input []int, tr *step.Tracer) []int {
	nums := clone(input)
	n := len(nums)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if tr.Stopped() {
				return nums
			}
			if nums[j] > nums[j+1] {
				nums[j], nums[j+1] = nums[j+1], nums[j]
			}
			if !tr.Emit(nums, j, j+1) {
				return nums
			}
		}
	}
	return nums
}
