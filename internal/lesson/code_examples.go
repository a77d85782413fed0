package lesson

import "fmt"

var codeExamples = map[Language]map[string]string{
	LanguagePython: {
		"array": `# Array example
arr = [1, 2, 3, 4, 5]
print(arr[0])  # Output: 1
print(len(arr))  # Output: 5`,
		"stack": `# Stack example
class Stack:
    def __init__(self):
        self.items = []

    def push(self, item):
        self.items.append(item)

    def pop(self):
        return self.items.pop()`,
		"queue": `# Queue example
from collections import deque
queue = deque()
queue.append(1)  # enqueue
first = queue.popleft()  # dequeue`,
		"linked-list": `# Linked List example
class ListNode:
    def __init__(self, val=0, next=None):
        self.val = val
        self.next = next

head = ListNode(1)
head.next = ListNode(2)`,
		"string": `# String example
s = "Hello World"
print(s.lower())  # hello world
print(s.split())  # ['Hello', 'World']
print(s[::-1])   # dlroW olleH`,
		"bit-manipulation": `# Bit Manipulation example
n = 5  # Binary: 101
print(n & 1)    # Check if odd: 1
print(n << 1)   # Left shift: 10
print(n | 2)    # Set bit: 7`,
		"sliding-window": `# Sliding Window example
def max_sum_subarray(arr, k):
    window_sum = sum(arr[:k])
    max_sum = window_sum
    for i in range(k, len(arr)):
        window_sum = window_sum - arr[i-k] + arr[i]
        max_sum = max(max_sum, window_sum)
    return max_sum`,
		"dp": `# Dynamic Programming example
def fibonacci(n):
    if n <= 1:
        return n
    dp = [0] * (n + 1)
    dp[1] = 1
    for i in range(2, n + 1):
        dp[i] = dp[i-1] + dp[i-2]
    return dp[n]`,
		"binary-tree": `# Binary Tree example
class TreeNode:
    def __init__(self, val=0, left=None, right=None):
        self.val = val
        self.left = left
        self.right = right

def inorder_traversal(root):
    if not root:
        return []
    return inorder_traversal(root.left) + [root.val] + inorder_traversal(root.right)`,
	},
	LanguageJava: {
		"array": `// Array example
int[] arr = {1, 2, 3, 4, 5};
System.out.println(arr[0]);      // Output: 1
System.out.println(arr.length);  // Output: 5`,
		"stack": `// Stack example
Deque<Integer> stack = new ArrayDeque<>();
stack.push(1);
stack.push(2);
int top = stack.pop();  // 2`,
		"queue": `// Queue example
Queue<Integer> queue = new LinkedList<>();
queue.offer(1);              // enqueue
int first = queue.poll();    // dequeue`,
		"string": `// String example
String s = "Hello World";
System.out.println(s.toLowerCase());
System.out.println(new StringBuilder(s).reverse());`,
	},
	LanguageCpp: {
		"array": `// Array example
vector<int> arr = {1, 2, 3, 4, 5};
cout << arr[0] << endl;       // Output: 1
cout << arr.size() << endl;   // Output: 5`,
		"queue": `// Queue example
queue<int> q;
q.push(1);                // enqueue
int first = q.front();
q.pop();                  // dequeue`,
		"bit-manipulation": `// Bit Manipulation example
int n = 5;               // Binary: 101
cout << (n & 1) << endl;  // Check if odd: 1
cout << (n << 1) << endl; // Left shift: 10`,
	},
}

// CodeExample returns the snippet for a category in the given language. It
// falls back to the Python snippet, then to a generic one.
func CodeExample(category string, language Language) string {
	if byCategory, ok := codeExamples[language]; ok {
		if s, ok := byCategory[category]; ok {
			return s
		}
	}
	if s, ok := codeExamples[LanguagePython][category]; ok {
		return s
	}
	return fmt.Sprintf(`// %s example
// Basic programming concepts
let x = 10;
if (x > 5) {
    console.log("x is greater than 5");
}`, words(category))
}
