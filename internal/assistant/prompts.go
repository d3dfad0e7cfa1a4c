package assistant

// scheduleSystemPrompt is the persona for free-form scheduling
// suggestions. User context blocks are appended to it when supplied.
const scheduleSystemPrompt = "You are an adaptive AI scheduling assistant that helps users manage their time effectively."

// prioritizeSystemPrompt is the persona for task prioritization.
const prioritizeSystemPrompt = "You are an AI assistant that helps prioritize tasks. Analyze the tasks and provide a clear, concise prioritization with brief explanations."

// conflictSystemPrompt is the persona for conflict resolution.
const conflictSystemPrompt = "You are an AI assistant that helps resolve scheduling conflicts. Provide a thoughtful analysis and recommendation."

// chatSystemPrompt is the persona for general chat.
const chatSystemPrompt = "You are a helpful AI assistant that can help with tasks, scheduling, and general questions. Be concise and friendly in your responses."
